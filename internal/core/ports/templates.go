package ports

import (
	"context"

	"github.com/legalsuite/case-management/internal/core/domain"
)

// TemplateInput carries the mutable fields of a document template.
type TemplateInput struct {
	TemplateName string
	Category     string
	FilePath     string
}

// TemplateService exposes owner-scoped CRUD over document templates.
type TemplateService interface {
	List(ctx context.Context, ownerID uint) ([]*domain.Template, error)
	Create(ctx context.Context, ownerID uint, in TemplateInput) (*domain.Template, error)
	Get(ctx context.Context, ownerID, id uint) (*domain.Template, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

// TemplateRepository defines persistence for templates.
type TemplateRepository interface {
	Create(ctx context.Context, t *domain.Template) (*domain.Template, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*domain.Template, error)
	FindByID(ctx context.Context, ownerID, id uint) (*domain.Template, error)
	Delete(ctx context.Context, ownerID, id uint) error
}
