package catalog

import (
	"context"

	experienceRepo "wanderbook/database/repository/experience"
	"wanderbook/models"
	"wanderbook/utils"

	"go.uber.org/zap"
)

// ErrNotFound signals that no experience matches the requested id.
var ErrNotFound = experienceRepo.ErrNotFound

// CatalogService exposes read-only access to the experience catalog.
type CatalogService interface {
	List(ctx context.Context, filter experienceRepo.ListFilter) ([]models.Experience, error)
	GetByID(ctx context.Context, id string) (*models.Experience, error)
}

// DefaultCatalogService implements CatalogService. Cache is optional; when
// set, detail reads go through it with a short TTL.
type DefaultCatalogService struct {
	Repo  experienceRepo.ExperienceRepository
	Cache ExperienceCache
}

// List returns experience summaries matching the filter. Dates and slots are
// omitted from summaries by design.
func (s *DefaultCatalogService) List(ctx context.Context, filter experienceRepo.ListFilter) ([]models.Experience, error) {
	return s.Repo.List(ctx, filter)
}

// GetByID returns the full experience document including all dates and slots.
func (s *DefaultCatalogService) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	if s.Cache != nil {
		if exp, err := s.Cache.Get(ctx, id); err == nil && exp != nil {
			return exp, nil
		}
	}

	exp, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, exp); err != nil {
			utils.GetLogger().Warn("failed to cache experience", zap.String("id", id), zap.Error(err))
		}
	}
	return exp, nil
}
