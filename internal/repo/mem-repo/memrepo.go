package memrepo

import (
	"context"
	"sync"

	"github.com/GlebRadaev/ordertracker/internal/domain"
)

// Repository keeps orders and the activity journal in process memory.
// Counters start from zero on every process start.
type Repository struct {
	mu          sync.RWMutex
	orders      map[int]domain.Order
	activities  []domain.Activity // newest first
	orderSeq    int
	activitySeq int
}

func New() *Repository {
	return &Repository{
		orders: make(map[int]domain.Order),
	}
}

func (r *Repository) GetOrder(_ context.Context, id int) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (r *Repository) PutOrder(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.ID] = *order
	return nil
}

func (r *Repository) ListOrdersByBucket(_ context.Context, month, year int) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]domain.Order, 0)
	for _, order := range r.orders {
		if order.Month == month && order.Year == year {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (r *Repository) ListAllOrders(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *Repository) NextOrderID(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orderSeq++
	return r.orderSeq, nil
}

func (r *Repository) AppendActivity(_ context.Context, activity *domain.Activity) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activitySeq++
	stored := *activity
	stored.ID = r.activitySeq

	r.activities = append([]domain.Activity{stored}, r.activities...)
	if len(r.activities) > domain.MaxActivities {
		r.activities = r.activities[:domain.MaxActivities]
	}
	return &stored, nil
}

func (r *Repository) ListActivities(_ context.Context, limit int) ([]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.activities)
	if limit > 0 && limit < n {
		n = limit
	}
	activities := make([]domain.Activity, n)
	copy(activities, r.activities[:n])
	return activities, nil
}

func (r *Repository) Ping(_ context.Context) error {
	return nil
}
