package domain

import (
	"errors"
	"time"
)

var ErrTemplateNotFound = errors.New("template not found")

// Template is a reusable document template owned by an advocate.
type Template struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	TemplateName string    `json:"template_name" gorm:"size:255"`
	Category     string    `json:"category" gorm:"size:100"`
	FilePath     string    `json:"file_path"`
	CreatedByID  uint      `json:"created_by" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
}
