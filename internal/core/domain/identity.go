package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "ADMIN"
	RoleAdvocate = "ADVOCATE"
	RoleStaff    = "STAFF"
	RoleClient   = "CLIENT"
)

var ErrIdentityNotFound = errors.New("identity not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity models an account capable of authenticating: an advocate,
// staff member, admin, or a client auto-provisioned on first OTP login.
type Identity struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Username      string    `json:"username" gorm:"uniqueIndex;size:150"`
	Email         string    `json:"email" gorm:"uniqueIndex;size:254"`
	PasswordHash  string    `json:"-"`
	FullName      string    `json:"full_name" gorm:"size:255"`
	Role          string    `json:"role" gorm:"size:10"`
	ContactNumber string    `json:"contact_number,omitempty" gorm:"size:15"`
	Active        bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HasUsablePassword reports whether password login is possible for this
// identity. OTP-provisioned accounts carry no hash and must never
// authenticate with a password.
func (i *Identity) HasUsablePassword() bool {
	return i.PasswordHash != ""
}
