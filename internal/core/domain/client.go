package domain

import (
	"errors"
	"time"
)

var ErrClientNotFound = errors.New("client not found")

// Client is a contact record managed by an advocate. It is not a login
// account; a CLIENT Identity is correlated to it by email only.
type Client struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	FullName      string    `json:"full_name" gorm:"size:255"`
	Email         string    `json:"email" gorm:"index;size:254"`
	ContactNumber string    `json:"contact_number,omitempty" gorm:"size:15"`
	Address       string    `json:"address,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Active        bool      `json:"is_active" gorm:"default:true"`
	CreatedByID   uint      `json:"created_by" gorm:"index"`
	CreatedAt     time.Time `json:"created_at"`
}
