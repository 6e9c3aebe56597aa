package service

import (
	"context"

	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/core/ports"
)

// DocumentService lists and registers case documents. A document's
// ownership chain runs through its case; uploading against a foreign
// case reads as the case not existing.
type DocumentService struct {
	repo  ports.DocumentRepository
	cases ports.CaseRepository
}

func NewDocumentService(repo ports.DocumentRepository, cases ports.CaseRepository) *DocumentService {
	return &DocumentService{repo: repo, cases: cases}
}

func (s *DocumentService) List(ctx context.Context, ownerID uint) ([]*domain.Document, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *DocumentService) Create(ctx context.Context, ownerID uint, in ports.DocumentInput) (*domain.Document, error) {
	if _, err := s.cases.FindByID(ctx, ownerID, in.CaseID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &domain.Document{
		CaseID:       in.CaseID,
		DocumentName: in.DocumentName,
		FileType:     in.FileType,
		FilePath:     in.FilePath,
	})
}

func (s *DocumentService) ListForCase(ctx context.Context, ownerID, caseID uint) ([]*domain.Document, error) {
	if _, err := s.cases.FindByID(ctx, ownerID, caseID); err != nil {
		return nil, err
	}
	return s.repo.ListByCase(ctx, ownerID, caseID)
}
