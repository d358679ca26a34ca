package activityservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ordertracker/internal/domain"
)

type Repo interface {
	ListActivities(ctx context.Context, limit int) ([]domain.Activity, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// List returns the kept journal, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.repo.ListActivities(ctx, domain.MaxActivities)
	if err != nil {
		zap.L().Error("failed to get activities", zap.Error(err))
		return nil, err
	}
	if activities == nil {
		activities = make([]domain.Activity, 0)
	}
	return activities, nil
}
