package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/legalsuite/case-management/internal/core/domain"
)

// DocumentRepository persists case documents. Scoped reads join cases
// because ownership is carried by the case, not the document.
type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	return d, nil
}

func (r *DocumentRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*domain.Document, error) {
	var docs []*domain.Document
	err := r.db.WithContext(ctx).
		Joins("JOIN cases ON cases.id = documents.case_id").
		Where("cases.created_by_id = ?", ownerID).
		Order("documents.uploaded_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (r *DocumentRepository) ListByCase(ctx context.Context, ownerID, caseID uint) ([]*domain.Document, error) {
	var docs []*domain.Document
	err := r.db.WithContext(ctx).
		Joins("JOIN cases ON cases.id = documents.case_id").
		Where("documents.case_id = ? AND cases.created_by_id = ?", caseID, ownerID).
		Order("documents.uploaded_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("list case documents: %w", err)
	}
	return docs, nil
}
