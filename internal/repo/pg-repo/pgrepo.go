package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ordertracker/internal/domain"
	"github.com/GlebRadaev/ordertracker/internal/pg"
)

const orderColumns = `id, name, is_own_material, price::text, advance_payment::text,
        alex_percentage::text, paid_to_alex::text, month, year, created_by, created_at, updated_at`

const activityColumns = `id, order_id, user_id, action, old_value, new_value, field_changed,
        created_at, order_name, user_name`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (*domain.Order, error) {
	var order domain.Order
	var price, advance, alex, paid string
	err := row.Scan(&order.ID, &order.Name, &order.IsOwnMaterial, &price, &advance,
		&alex, &paid, &order.Month, &order.Year, &order.CreatedBy, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	amounts := []struct {
		raw string
		dst *decimal.Decimal
	}{
		{price, &order.Price},
		{advance, &order.AdvancePayment},
		{alex, &order.AlexPercentage},
		{paid, &order.PaidToAlex},
	}
	for _, a := range amounts {
		if *a.dst, err = decimal.NewFromString(a.raw); err != nil {
			return nil, fmt.Errorf("bad amount %q: %w", a.raw, err)
		}
	}
	return &order, nil
}

func scanActivity(row scanner) (*domain.Activity, error) {
	var a domain.Activity
	var action string
	err := row.Scan(&a.ID, &a.OrderID, &a.UserID, &action, &a.OldValue, &a.NewValue,
		&a.FieldChanged, &a.CreatedAt, &a.OrderName, &a.UserName)
	if err != nil {
		return nil, err
	}
	a.Action = domain.Action(action)
	return &a, nil
}

func (r *Repository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) PutOrder(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (id, name, is_own_material, price, advance_payment, alex_percentage,
            paid_to_alex, month, year, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            is_own_material = EXCLUDED.is_own_material,
            price = EXCLUDED.price,
            advance_payment = EXCLUDED.advance_payment,
            alex_percentage = EXCLUDED.alex_percentage,
            paid_to_alex = EXCLUDED.paid_to_alex,
            month = EXCLUDED.month,
            year = EXCLUDED.year,
            created_by = EXCLUDED.created_by,
            updated_at = EXCLUDED.updated_at
    `
	_, err := r.db.Exec(ctx, query, order.ID, order.Name, order.IsOwnMaterial,
		order.Price.String(), order.AdvancePayment.String(), order.AlexPercentage.String(),
		order.PaidToAlex.String(), order.Month, order.Year, order.CreatedBy, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save order", zap.Int("id", order.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListOrdersByBucket(ctx context.Context, month, year int) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE month = $1 AND year = $2
    `
	return r.queryOrders(ctx, query, month, year)
}

func (r *Repository) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
    `
	return r.queryOrders(ctx, query)
}

func (r *Repository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate order rows", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (r *Repository) NextOrderID(ctx context.Context) (int, error) {
	var id int
	if err := r.db.QueryRow(ctx, `SELECT nextval('orders_id_seq')`).Scan(&id); err != nil {
		zap.L().Error("can't get next order id", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *Repository) AppendActivity(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	query := `
        INSERT INTO activities (order_id, user_id, action, old_value, new_value, field_changed,
            created_at, order_name, user_name)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	stored := *activity
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, stored.OrderID, stored.UserID, string(stored.Action),
			stored.OldValue, stored.NewValue, stored.FieldChanged, stored.CreatedAt,
			stored.OrderName, stored.UserName).Scan(&stored.ID)
		if err != nil {
			zap.L().Error("can't save activity", zap.Error(err))
			return err
		}
		return r.TrimActivities(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *Repository) TrimActivities(ctx context.Context) error {
	query := `
        DELETE FROM activities
        WHERE id NOT IN (SELECT id FROM activities ORDER BY id DESC LIMIT $1)
    `
	if _, err := r.db.Exec(ctx, query, domain.MaxActivities); err != nil {
		zap.L().Error("can't trim activities", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 || limit > domain.MaxActivities {
		limit = domain.MaxActivities
	}
	query := `
        SELECT ` + activityColumns + `
        FROM activities
        ORDER BY id DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get activities", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	activities := make([]domain.Activity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			zap.L().Error("can't scan activity row", zap.Error(err))
			return nil, err
		}
		activities = append(activities, *activity)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate activity rows", zap.Error(err))
		return nil, err
	}
	return activities, nil
}

// ImportOrder upserts an order with its own id and moves the id sequence
// past it.
func (r *Repository) ImportOrder(ctx context.Context, order *domain.Order) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := r.PutOrder(ctx, order); err != nil {
			return err
		}
		return r.advanceSequence(ctx, "orders_id_seq", order.ID)
	})
}

func (r *Repository) ImportActivity(ctx context.Context, activity *domain.Activity) error {
	query := `
        INSERT INTO activities (id, order_id, user_id, action, old_value, new_value, field_changed,
            created_at, order_name, user_name)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (id) DO NOTHING
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, activity.ID, activity.OrderID, activity.UserID,
			string(activity.Action), activity.OldValue, activity.NewValue, activity.FieldChanged,
			activity.CreatedAt, activity.OrderName, activity.UserName)
		if err != nil {
			zap.L().Error("can't import activity", zap.Int("id", activity.ID), zap.Error(err))
			return err
		}
		return r.advanceSequence(ctx, "activities_id_seq", activity.ID)
	})
}

func (r *Repository) advanceSequence(ctx context.Context, sequence string, atLeast int) error {
	query := fmt.Sprintf(`SELECT setval('%[1]s', GREATEST($1, (SELECT last_value FROM %[1]s)))`, sequence)
	if _, err := r.db.Exec(ctx, query, atLeast); err != nil {
		zap.L().Error("can't advance sequence", zap.String("sequence", sequence), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	_, err := r.db.Exec(ctx, "SELECT 1")
	return err
}
