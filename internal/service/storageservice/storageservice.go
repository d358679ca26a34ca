package storageservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ordertracker/internal/domain"
)

type Repo interface {
	Ping(ctx context.Context) error
}

type Service struct {
	backend  string
	external bool
	repo     Repo
	now      func() time.Time
}

func New(backend string, external bool, repo Repo) *Service {
	return &Service{
		backend:  backend,
		external: external,
		repo:     repo,
		now:      time.Now,
	}
}

// Status reports the active backend and whether it answers a ping.
func (s *Service) Status(ctx context.Context) *domain.StorageStatus {
	status := &domain.StorageStatus{
		Backend:   s.backend,
		External:  s.external,
		Healthy:   true,
		CheckedAt: s.now().UTC(),
	}
	if err := s.repo.Ping(ctx); err != nil {
		zap.L().Warn("storage ping failed", zap.String("backend", s.backend), zap.Error(err))
		status.Healthy = false
		status.Error = err.Error()
	}
	return status
}
