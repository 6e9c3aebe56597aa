package domain

import (
	"errors"
	"time"
)

var ErrCaseNotFound = errors.New("case not found")

// Case statuses mirror the values the office actually files under; no
// transition rules apply to cases.
const (
	CaseOpen   = "Open"
	CaseClosed = "Closed"
)

// Case is a legal matter opened for a client by an advocate.
type Case struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	ClientID    uint       `json:"client" gorm:"index"`
	CaseTitle   string     `json:"case_title" gorm:"size:255"`
	CaseNumber  string     `json:"case_number" gorm:"size:100"`
	CaseType    string     `json:"case_type" gorm:"size:100"`
	Status      string     `json:"status" gorm:"size:20;default:Open"`
	CourtName   string     `json:"court_name,omitempty" gorm:"size:255"`
	NextHearing *time.Time `json:"next_hearing,omitempty"`
	CreatedByID uint       `json:"created_by" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
