package domain

import (
	"errors"
	"time"
)

var ErrPaymentNotFound = errors.New("payment not found")

// Payment records money received from a client, optionally against a
// specific case.
type Payment struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ClientID      uint      `json:"client" gorm:"index"`
	CaseID        *uint     `json:"case,omitempty" gorm:"index"`
	Amount        float64   `json:"amount"`
	PaymentDate   string    `json:"payment_date" gorm:"size:10"`
	PaymentMode   string    `json:"payment_mode" gorm:"size:50"`
	ReceiptNumber string    `json:"receipt_number,omitempty" gorm:"size:100"`
	Status        string    `json:"status" gorm:"size:20"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
