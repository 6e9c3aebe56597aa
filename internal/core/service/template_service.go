package service

import (
	"context"

	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/core/ports"
)

// TemplateService exposes owner-scoped CRUD over document templates.
type TemplateService struct {
	repo ports.TemplateRepository
}

func NewTemplateService(repo ports.TemplateRepository) *TemplateService {
	return &TemplateService{repo: repo}
}

func (s *TemplateService) List(ctx context.Context, ownerID uint) ([]*domain.Template, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *TemplateService) Create(ctx context.Context, ownerID uint, in ports.TemplateInput) (*domain.Template, error) {
	return s.repo.Create(ctx, &domain.Template{
		TemplateName: in.TemplateName,
		Category:     in.Category,
		FilePath:     in.FilePath,
		CreatedByID:  ownerID,
	})
}

func (s *TemplateService) Get(ctx context.Context, ownerID, id uint) (*domain.Template, error) {
	return s.repo.FindByID(ctx, ownerID, id)
}

func (s *TemplateService) Delete(ctx context.Context, ownerID, id uint) error {
	return s.repo.Delete(ctx, ownerID, id)
}
