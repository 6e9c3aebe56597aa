package domain

import (
	"errors"
	"time"
)

var ErrCodeNotFound = errors.New("no passcode found")
var ErrInvalidCode = errors.New("invalid or expired passcode")
var ErrRateLimited = errors.New("too many passcode requests")
var ErrMailDelivery = errors.New("failed to send email")

// Passcode is a short-lived one-time login code bound to an email
// address. Records are never updated: a new request appends a fresh
// row, verification reads the latest by creation time, and success
// purges every row for the email.
type Passcode struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"index;size:254"`
	Code      string    `json:"-" gorm:"size:6"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the code is older than the validity window.
func (p *Passcode) Expired(now time.Time, window time.Duration) bool {
	return now.Sub(p.CreatedAt) > window
}
