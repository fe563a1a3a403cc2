package monitor

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetMonitor(ctx context.Context, monitorID uuid.UUID) (Monitor, error) {
	return s.repo.GetByID(ctx, monitorID)
}

func (s *Service) ListMonitors(ctx context.Context, limit, offset int32) ([]Monitor, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}
