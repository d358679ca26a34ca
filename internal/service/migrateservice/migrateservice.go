package migrateservice

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ordertracker/internal/domain"
)

// Source is the in-process store that data is copied from.
type Source interface {
	ListAllOrders(ctx context.Context) ([]domain.Order, error)
	ListActivities(ctx context.Context, limit int) ([]domain.Activity, error)
}

// Target is an external store that accepts records with their ids.
type Target interface {
	ImportOrder(ctx context.Context, order *domain.Order) error
	ImportActivity(ctx context.Context, activity *domain.Activity) error
	TrimActivities(ctx context.Context) error
}

type Service struct {
	source Source
	target Target
}

// New builds the migration service. target is nil when no external store
// is reachable.
func New(source Source, target Target) *Service {
	return &Service{
		source: source,
		target: target,
	}
}

// Run copies every in-process order and activity into the external store.
// It is not safe against concurrent writers on either side.
func (s *Service) Run(ctx context.Context) (*domain.MigrationResult, error) {
	if s.target == nil {
		return nil, domain.ErrNoExternalStore
	}

	orders, err := s.source.ListAllOrders(ctx)
	if err != nil {
		zap.L().Error("can't read in-process orders", zap.Error(err))
		return nil, err
	}
	activities, err := s.source.ListActivities(ctx, 0)
	if err != nil {
		zap.L().Error("can't read in-process activities", zap.Error(err))
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })

	result := &domain.MigrationResult{}
	for i := range orders {
		if err := s.target.ImportOrder(ctx, &orders[i]); err != nil {
			zap.L().Error("can't migrate order", zap.Int("id", orders[i].ID), zap.Error(err))
			return result, fmt.Errorf("migrate order %d: %w", orders[i].ID, err)
		}
		result.MigratedOrders++
	}

	// Activities come newest first; import oldest first so the target keeps
	// the same order.
	for i := len(activities) - 1; i >= 0; i-- {
		if err := s.target.ImportActivity(ctx, &activities[i]); err != nil {
			zap.L().Error("can't migrate activity", zap.Int("id", activities[i].ID), zap.Error(err))
			return result, fmt.Errorf("migrate activity %d: %w", activities[i].ID, err)
		}
		result.MigratedActivities++
	}

	if err := s.target.TrimActivities(ctx); err != nil {
		zap.L().Error("can't trim migrated activities", zap.Error(err))
		return result, err
	}

	zap.L().Info("migration completed",
		zap.Int("orders", result.MigratedOrders),
		zap.Int("activities", result.MigratedActivities))
	return result, nil
}
