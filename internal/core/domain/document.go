package domain

import (
	"errors"
	"time"
)

var ErrDocumentNotFound = errors.New("document not found")

// Document is a file uploaded against a case. Ownership is transitive:
// a document is visible to whoever owns its case.
type Document struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CaseID       uint      `json:"case" gorm:"index"`
	DocumentName string    `json:"document_name" gorm:"size:255"`
	FileType     string    `json:"file_type" gorm:"size:50"`
	FilePath     string    `json:"file_path"`
	UploadedAt   time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}
