package summaryservice

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ordertracker/internal/domain"
)

type Repo interface {
	ListAllOrders(ctx context.Context) ([]domain.Order, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// GetSummary loads every order and computes the summary relative to the
// given month. Nothing is cached between calls.
func (s *Service) GetSummary(ctx context.Context, month, year int) (*domain.Summary, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", domain.ErrValidation)
	}
	orders, err := s.repo.ListAllOrders(ctx)
	if err != nil {
		zap.L().Error("failed to load orders for summary", zap.Error(err))
		return nil, err
	}
	summary := Compute(orders, month, year)
	zap.L().Debug("summary calculated",
		zap.Int("month", month),
		zap.Int("year", year),
		zap.String("current_pending", summary.CurrentMonth.Pending.StringFixed(2)),
		zap.String("previous_pending", summary.PreviousMonths.Pending.StringFixed(2)))
	return &summary, nil
}

// Compute partitions orders around the reference month. Orders in later
// months only count towards the global totals.
func Compute(orders []domain.Order, refMonth, refYear int) domain.Summary {
	summary := domain.Summary{
		Total:          zeroTotals(),
		CurrentMonth:   zeroTotals(),
		PreviousMonths: zeroTotals(),
		PendingByMonth: make([]domain.MonthPending, 0),
		ReferenceMonth: refMonth,
		ReferenceYear:  refYear,
	}

	groups := make(map[[2]int]*domain.MonthPending)
	for _, order := range orders {
		add(&summary.Total, order)
		switch {
		case order.Year == refYear && order.Month == refMonth:
			add(&summary.CurrentMonth, order)
		case order.Year < refYear || (order.Year == refYear && order.Month < refMonth):
			add(&summary.PreviousMonths, order)
		}

		pending := order.Pending()
		if !pending.IsPositive() {
			continue
		}
		key := [2]int{order.Year, order.Month}
		group, ok := groups[key]
		if !ok {
			group = &domain.MonthPending{
				Month:     order.Month,
				Year:      order.Year,
				MonthName: domain.MonthName(order.Month),
				Pending:   decimal.Zero,
			}
			groups[key] = group
		}
		group.Pending = group.Pending.Add(pending)
		group.Orders++
	}

	for _, group := range groups {
		summary.PendingByMonth = append(summary.PendingByMonth, *group)
	}
	sort.Slice(summary.PendingByMonth, func(i, j int) bool {
		a, b := summary.PendingByMonth[i], summary.PendingByMonth[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Month < b.Month
	})
	return summary
}

func zeroTotals() domain.Totals {
	return domain.Totals{
		AlexPercentage: decimal.Zero,
		Paid:           decimal.Zero,
		Pending:        decimal.Zero,
	}
}

func add(t *domain.Totals, order domain.Order) {
	t.Orders++
	t.AlexPercentage = t.AlexPercentage.Add(order.AlexPercentage)
	t.Paid = t.Paid.Add(order.PaidToAlex)
	t.Pending = t.Pending.Add(order.Pending())
}
