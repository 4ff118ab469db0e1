package category

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"servicehub/internal/api"
	"servicehub/internal/domain"
)

// CategoryAPI is the slice of the backend client this module depends on.
type CategoryAPI interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, req api.CategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, req api.CategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type Service struct {
	api CategoryAPI
	log *zap.Logger
}

func NewService(categoryAPI CategoryAPI, log *zap.Logger) *Service {
	return &Service{api: categoryAPI, log: log}
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.api.ListCategories(ctx)
}

// Create derives the slug from the name before sending.
func (s *Service) Create(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	return s.api.CreateCategory(ctx, api.CategoryRequest{
		Name: name,
		Slug: domain.Slugify(name),
	})
}

func (s *Service) Rename(ctx context.Context, id int64, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	return s.api.UpdateCategory(ctx, id, api.CategoryRequest{
		Name: name,
		Slug: domain.Slugify(name),
	})
}

// Delete refuses client-side while any service in the caller's current
// collection references the category; the server enforces the same rule,
// this just skips the round trip.
func (s *Service) Delete(ctx context.Context, categoryID int64, services []domain.Service) error {
	inUse := 0
	for _, svc := range services {
		if svc.CategoryID == categoryID {
			inUse++
		}
	}
	if inUse > 0 {
		s.log.Debug("category delete blocked",
			zap.Int64("category_id", categoryID),
			zap.Int("service_count", inUse),
		)
		return ErrCategoryInUse
	}
	return s.api.DeleteCategory(ctx, categoryID)
}
