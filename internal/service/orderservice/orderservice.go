package orderservice

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ordertracker/internal/domain"
)

type Repo interface {
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	PutOrder(ctx context.Context, order *domain.Order) error
	ListOrdersByBucket(ctx context.Context, month, year int) ([]domain.Order, error)
	ListAllOrders(ctx context.Context) ([]domain.Order, error)
	NextOrderID(ctx context.Context) (int, error)
	AppendActivity(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// PriceField is recorded as field_changed on UPDATE activities.
const PriceField = "price"

func (s *Service) Create(ctx context.Context, actorID int, in domain.NewOrder) (*domain.Order, error) {
	if in.CreatedBy == 0 {
		in.CreatedBy = actorID
	}
	if in.CreatedBy == 0 {
		in.CreatedBy = domain.UserAlex
	}
	order := &domain.Order{
		Name:           strings.TrimSpace(in.Name),
		IsOwnMaterial:  in.IsOwnMaterial,
		Price:          in.Price,
		AdvancePayment: in.AdvancePayment,
		AlexPercentage: in.AlexPercentage,
		PaidToAlex:     in.PaidToAlex,
		Month:          in.Month,
		Year:           in.Year,
		CreatedBy:      in.CreatedBy,
	}
	if err := validate(order); err != nil {
		zap.L().Info("rejected new order", zap.Error(err))
		return nil, err
	}

	id, err := s.repo.NextOrderID(ctx)
	if err != nil {
		zap.L().Error("can't allocate order id", zap.Error(err))
		return nil, err
	}
	now := s.now().UTC()
	order.ID = id
	order.CreatedAt = now
	order.UpdatedAt = now

	if err := s.repo.PutOrder(ctx, order); err != nil {
		zap.L().Error("can't save order", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	s.journal(ctx, &domain.Activity{
		OrderID:   order.ID,
		UserID:    order.CreatedBy,
		Action:    domain.ActionCreate,
		NewValue:  order.Name,
		CreatedAt: now,
		OrderName: order.Name,
	})
	return order, nil
}

func (s *Service) Update(ctx context.Context, actorID, id int, patch domain.OrderPatch) (*domain.Order, error) {
	current, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	applyPatch(&updated, patch)
	if err := validate(&updated); err != nil {
		zap.L().Info("rejected order update", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	now := s.now().UTC()
	updated.UpdatedAt = now

	if err := s.repo.PutOrder(ctx, &updated); err != nil {
		zap.L().Error("can't save order", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	if actorID == 0 {
		actorID = domain.UserAlex
	}
	s.journal(ctx, &domain.Activity{
		OrderID:      updated.ID,
		UserID:       actorID,
		Action:       domain.ActionUpdate,
		OldValue:     current.Price.StringFixed(2),
		NewValue:     updated.Price.StringFixed(2),
		FieldChanged: PriceField,
		CreatedAt:    now,
		OrderName:    updated.Name,
	})
	return &updated, nil
}

// RegisterPayment sets the cumulative amount paid to Alex. The last write wins
// when two payments race on the same order.
func (s *Service) RegisterPayment(ctx context.Context, actorID, id int, payment domain.Payment) (*domain.Order, error) {
	current, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if !payment.Increment.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", domain.ErrValidation)
	}
	if !wholeCents(payment.Increment) || !wholeCents(payment.Cumulative) {
		return nil, fmt.Errorf("%w: amounts must have at most 2 decimals", domain.ErrValidation)
	}
	if payment.Cumulative.IsNegative() || payment.Cumulative.GreaterThan(current.AlexPercentage) {
		return nil, fmt.Errorf("%w: paid amount must be between 0 and %s",
			domain.ErrValidation, current.AlexPercentage.StringFixed(2))
	}

	updated := *current
	now := s.now().UTC()
	updated.PaidToAlex = payment.Cumulative
	updated.UpdatedAt = now

	if err := s.repo.PutOrder(ctx, &updated); err != nil {
		zap.L().Error("can't save payment", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	if actorID == 0 {
		actorID = domain.UserIsa
	}
	s.journal(ctx, &domain.Activity{
		OrderID:   updated.ID,
		UserID:    actorID,
		Action:    domain.ActionPayment,
		NewValue:  payment.Increment.StringFixed(2),
		CreatedAt: now,
		OrderName: updated.Name,
	})
	return &updated, nil
}

// ListByBucket returns the orders of one month, newest first.
func (s *Service) ListByBucket(ctx context.Context, month, year int) ([]domain.Order, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", domain.ErrValidation)
	}
	orders, err := s.repo.ListOrdersByBucket(ctx, month, year)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Int("month", month), zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	SortNewestFirst(orders)
	return orders, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.ListAllOrders(ctx)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	SortNewestFirst(orders)
	return orders, nil
}

// SortNewestFirst orders by created_at descending, ties by id descending.
func SortNewestFirst(orders []domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
}

func (s *Service) load(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		zap.L().Error("can't get order", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if order == nil {
		zap.L().Info("order not found", zap.Int("id", id))
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// journal appends the activity for a mutation that is already stored. A
// failure here is logged and does not undo the mutation.
func (s *Service) journal(ctx context.Context, activity *domain.Activity) {
	activity.UserName = domain.UserName(activity.UserID)
	if _, err := s.repo.AppendActivity(ctx, activity); err != nil {
		zap.L().Error("order stored but activity was not recorded",
			zap.Int("order_id", activity.OrderID),
			zap.String("action", string(activity.Action)),
			zap.Error(err))
	}
}

func applyPatch(order *domain.Order, patch domain.OrderPatch) {
	if patch.Name != nil {
		order.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.IsOwnMaterial != nil {
		order.IsOwnMaterial = *patch.IsOwnMaterial
	}
	if patch.Price != nil {
		order.Price = *patch.Price
	}
	if patch.AdvancePayment != nil {
		order.AdvancePayment = *patch.AdvancePayment
	}
	if patch.AlexPercentage != nil {
		order.AlexPercentage = *patch.AlexPercentage
	}
	if patch.PaidToAlex != nil {
		order.PaidToAlex = *patch.PaidToAlex
	}
	if patch.Month != nil {
		order.Month = *patch.Month
	}
	if patch.Year != nil {
		order.Year = *patch.Year
	}
}

func validate(order *domain.Order) error {
	if order.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if order.Month < 1 || order.Month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", domain.ErrValidation)
	}
	if order.Year < 1 {
		return fmt.Errorf("%w: year must be positive", domain.ErrValidation)
	}
	amounts := map[string]decimal.Decimal{
		"price":           order.Price,
		"advance_payment": order.AdvancePayment,
		"alex_percentage": order.AlexPercentage,
		"paid_to_alex":    order.PaidToAlex,
	}
	for field, amount := range amounts {
		if amount.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", domain.ErrValidation, field)
		}
		if !wholeCents(amount) {
			return fmt.Errorf("%w: %s must have at most 2 decimals", domain.ErrValidation, field)
		}
	}
	return nil
}

// wholeCents reports whether d is exact at 2 decimals, the precision every
// backend stores.
func wholeCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}
