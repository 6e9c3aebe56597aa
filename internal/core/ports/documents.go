package ports

import (
	"context"

	"github.com/legalsuite/case-management/internal/core/domain"
)

// DocumentInput carries the mutable fields of an uploaded document.
type DocumentInput struct {
	CaseID       uint
	DocumentName string
	FileType     string
	FilePath     string
}

// DocumentService lists and registers documents. Ownership is checked
// through the document's case: uploading against a foreign case is
// reported as the case not existing.
type DocumentService interface {
	List(ctx context.Context, ownerID uint) ([]*domain.Document, error)
	Create(ctx context.Context, ownerID uint, in DocumentInput) (*domain.Document, error)
	ListForCase(ctx context.Context, ownerID, caseID uint) ([]*domain.Document, error)
}

// DocumentRepository defines persistence for documents. Owner filters
// join through cases.created_by.
type DocumentRepository interface {
	Create(ctx context.Context, d *domain.Document) (*domain.Document, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*domain.Document, error)
	ListByCase(ctx context.Context, ownerID, caseID uint) ([]*domain.Document, error)
}
