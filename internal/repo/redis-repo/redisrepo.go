package redisrepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ordertracker/internal/domain"
)

const (
	orderCounterKey    = "order_counter"
	activityCounterKey = "activity_counter"
	activitiesKey      = "activities"
	bucketsKey         = "orders:buckets"
)

func orderKey(id int) string {
	return "order:" + strconv.Itoa(id)
}

func activityKey(id int) string {
	return "activity:" + strconv.Itoa(id)
}

func bucketKey(year, month int) string {
	return fmt.Sprintf("orders:%d:%d", year, month)
}

func bucketMember(year, month int) string {
	return fmt.Sprintf("%d:%d", year, month)
}

type Repository struct {
	client redis.UniversalClient
}

func New(client redis.UniversalClient) *Repository {
	return &Repository{client: client}
}

// Connect parses url, applies password when set and checks the server answers.
func Connect(ctx context.Context, url, password string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("can't parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("can't reach redis: %w", err)
	}
	return client, nil
}

func (r *Repository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	fields, err := r.client.HGetAll(ctx, orderKey(id)).Result()
	if err != nil {
		zap.L().Error("can't get order", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}
	order, err := decodeOrder(id, fields)
	if err != nil {
		zap.L().Error("can't decode order", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) PutOrder(ctx context.Context, order *domain.Order) error {
	key := orderKey(order.ID)
	prev, err := r.client.HMGet(ctx, key, "month", "year").Result()
	if err != nil {
		zap.L().Error("can't read order bucket", zap.Int("id", order.ID), zap.Error(err))
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if month, year, ok := parseBucket(prev); ok && (month != order.Month || year != order.Year) {
			pipe.SRem(ctx, bucketKey(year, month), order.ID)
		}
		pipe.HSet(ctx, key, encodeOrder(order))
		pipe.SAdd(ctx, bucketKey(order.Year, order.Month), order.ID)
		pipe.SAdd(ctx, bucketsKey, bucketMember(order.Year, order.Month))
		return nil
	})
	if err != nil {
		zap.L().Error("can't save order", zap.Int("id", order.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListOrdersByBucket(ctx context.Context, month, year int) ([]domain.Order, error) {
	ids, err := r.client.SMembers(ctx, bucketKey(year, month)).Result()
	if err != nil {
		zap.L().Error("can't list bucket", zap.Int("month", month), zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	return r.loadOrders(ctx, ids)
}

func (r *Repository) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	buckets, err := r.client.SMembers(ctx, bucketsKey).Result()
	if err != nil {
		zap.L().Error("can't list buckets", zap.Error(err))
		return nil, err
	}

	orders := make([]domain.Order, 0)
	for _, member := range buckets {
		var year, month int
		if _, err := fmt.Sscanf(member, "%d:%d", &year, &month); err != nil {
			zap.L().Warn("skipping malformed bucket", zap.String("bucket", member))
			continue
		}
		bucket, err := r.ListOrdersByBucket(ctx, month, year)
		if err != nil {
			return nil, err
		}
		orders = append(orders, bucket...)
	}
	return orders, nil
}

func (r *Repository) loadOrders(ctx context.Context, ids []string) ([]domain.Order, error) {
	orders := make([]domain.Order, 0, len(ids))
	if len(ids) == 0 {
		return orders, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, "order:"+id)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't load orders", zap.Error(err))
		return nil, err
	}

	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		id, err := strconv.Atoi(ids[i])
		if err != nil {
			return nil, fmt.Errorf("bad order id %q: %w", ids[i], err)
		}
		order, err := decodeOrder(id, fields)
		if err != nil {
			zap.L().Error("can't decode order", zap.Int("id", id), zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *Repository) NextOrderID(ctx context.Context) (int, error) {
	id, err := r.client.Incr(ctx, orderCounterKey).Result()
	if err != nil {
		zap.L().Error("can't increment order counter", zap.Error(err))
		return 0, err
	}
	return int(id), nil
}

func (r *Repository) AppendActivity(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	id, err := r.client.Incr(ctx, activityCounterKey).Result()
	if err != nil {
		zap.L().Error("can't increment activity counter", zap.Error(err))
		return nil, err
	}
	stored := *activity
	stored.ID = int(id)

	if err := r.client.HSet(ctx, activityKey(stored.ID), encodeActivity(&stored)).Err(); err != nil {
		zap.L().Error("can't save activity", zap.Int("id", stored.ID), zap.Error(err))
		return nil, err
	}
	if err := r.client.LPush(ctx, activitiesKey, stored.ID).Err(); err != nil {
		zap.L().Error("can't index activity", zap.Int("id", stored.ID), zap.Error(err))
		return nil, err
	}
	if err := r.TrimActivities(ctx); err != nil {
		return nil, err
	}
	return &stored, nil
}

// TrimActivities cuts the journal index to the newest entries and drops the
// hashes that fell off it.
func (r *Repository) TrimActivities(ctx context.Context) error {
	pruned, err := r.client.LRange(ctx, activitiesKey, domain.MaxActivities, -1).Result()
	if err != nil {
		zap.L().Error("can't read pruned activities", zap.Error(err))
		return err
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LTrim(ctx, activitiesKey, 0, domain.MaxActivities-1)
		for _, id := range pruned {
			pipe.Del(ctx, "activity:"+id)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't trim activities", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	stop := int64(domain.MaxActivities - 1)
	if limit > 0 && limit < domain.MaxActivities {
		stop = int64(limit - 1)
	}
	ids, err := r.client.LRange(ctx, activitiesKey, 0, stop).Result()
	if err != nil {
		zap.L().Error("can't list activities", zap.Error(err))
		return nil, err
	}

	activities := make([]domain.Activity, 0, len(ids))
	if len(ids) == 0 {
		return activities, nil
	}
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, "activity:"+id)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't load activities", zap.Error(err))
		return nil, err
	}
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		id, err := strconv.Atoi(ids[i])
		if err != nil {
			return nil, fmt.Errorf("bad activity id %q: %w", ids[i], err)
		}
		activity, err := decodeActivity(id, fields)
		if err != nil {
			zap.L().Error("can't decode activity", zap.Int("id", id), zap.Error(err))
			return nil, err
		}
		activities = append(activities, *activity)
	}
	return activities, nil
}

// ImportOrder writes an order under its existing id and advances the
// order counter so the id is never handed out again.
func (r *Repository) ImportOrder(ctx context.Context, order *domain.Order) error {
	if err := r.PutOrder(ctx, order); err != nil {
		return err
	}
	return r.advanceCounter(ctx, orderCounterKey, order.ID)
}

// ImportActivity pushes an activity under its existing id. Callers import
// oldest first so the list ends newest first.
func (r *Repository) ImportActivity(ctx context.Context, activity *domain.Activity) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, activityKey(activity.ID), encodeActivity(activity))
		pipe.LPush(ctx, activitiesKey, activity.ID)
		return nil
	})
	if err != nil {
		zap.L().Error("can't import activity", zap.Int("id", activity.ID), zap.Error(err))
		return err
	}
	return r.advanceCounter(ctx, activityCounterKey, activity.ID)
}

func (r *Repository) advanceCounter(ctx context.Context, key string, atLeast int) error {
	current, err := r.client.Get(ctx, key).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		zap.L().Error("can't read counter", zap.String("key", key), zap.Error(err))
		return err
	}
	if current >= atLeast {
		return nil
	}
	if err := r.client.Set(ctx, key, atLeast, 0).Err(); err != nil {
		zap.L().Error("can't advance counter", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func parseBucket(values []any) (month, year int, ok bool) {
	if len(values) != 2 {
		return 0, 0, false
	}
	ms, mok := values[0].(string)
	ys, yok := values[1].(string)
	if !mok || !yok {
		return 0, 0, false
	}
	month, err := strconv.Atoi(ms)
	if err != nil {
		return 0, 0, false
	}
	year, err = strconv.Atoi(ys)
	if err != nil {
		return 0, 0, false
	}
	return month, year, true
}

func encodeOrder(order *domain.Order) map[string]any {
	return map[string]any{
		"id":              order.ID,
		"name":            order.Name,
		"is_own_material": strconv.FormatBool(order.IsOwnMaterial),
		"price":           order.Price.String(),
		"advance_payment": order.AdvancePayment.String(),
		"alex_percentage": order.AlexPercentage.String(),
		"paid_to_alex":    order.PaidToAlex.String(),
		"month":           order.Month,
		"year":            order.Year,
		"created_by":      order.CreatedBy,
		"created_at":      order.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at":      order.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func decodeOrder(id int, fields map[string]string) (*domain.Order, error) {
	order := &domain.Order{
		ID:            id,
		Name:          fields["name"],
		IsOwnMaterial: fields["is_own_material"] == "true",
	}

	var err error
	amounts := []struct {
		field string
		dst   *decimal.Decimal
	}{
		{"price", &order.Price},
		{"advance_payment", &order.AdvancePayment},
		{"alex_percentage", &order.AlexPercentage},
		{"paid_to_alex", &order.PaidToAlex},
	}
	for _, a := range amounts {
		if *a.dst, err = parseAmount(fields[a.field]); err != nil {
			return nil, fmt.Errorf("field %s: %w", a.field, err)
		}
	}

	ints := []struct {
		field string
		dst   *int
	}{
		{"month", &order.Month},
		{"year", &order.Year},
		{"created_by", &order.CreatedBy},
	}
	for _, i := range ints {
		if *i.dst, err = strconv.Atoi(fields[i.field]); err != nil {
			return nil, fmt.Errorf("field %s: %w", i.field, err)
		}
	}

	if order.CreatedAt, err = parseTime(fields["created_at"]); err != nil {
		return nil, fmt.Errorf("field created_at: %w", err)
	}
	if order.UpdatedAt, err = parseTime(fields["updated_at"]); err != nil {
		return nil, fmt.Errorf("field updated_at: %w", err)
	}
	return order, nil
}

func encodeActivity(activity *domain.Activity) map[string]any {
	return map[string]any{
		"id":            activity.ID,
		"order_id":      activity.OrderID,
		"user_id":       activity.UserID,
		"action":        string(activity.Action),
		"old_value":     activity.OldValue,
		"new_value":     activity.NewValue,
		"field_changed": activity.FieldChanged,
		"created_at":    activity.CreatedAt.UTC().Format(time.RFC3339Nano),
		"order_name":    activity.OrderName,
		"user_name":     activity.UserName,
	}
}

func decodeActivity(id int, fields map[string]string) (*domain.Activity, error) {
	activity := &domain.Activity{
		ID:           id,
		Action:       domain.Action(fields["action"]),
		OldValue:     fields["old_value"],
		NewValue:     fields["new_value"],
		FieldChanged: fields["field_changed"],
		OrderName:    fields["order_name"],
		UserName:     fields["user_name"],
	}
	var err error
	if activity.OrderID, err = strconv.Atoi(fields["order_id"]); err != nil {
		return nil, fmt.Errorf("field order_id: %w", err)
	}
	if activity.UserID, err = strconv.Atoi(fields["user_id"]); err != nil {
		return nil, fmt.Errorf("field user_id: %w", err)
	}
	if activity.CreatedAt, err = parseTime(fields["created_at"]); err != nil {
		return nil, fmt.Errorf("field created_at: %w", err)
	}
	return activity, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
