package migrateservice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ordertracker/internal/domain"
	memrepo "github.com/GlebRadaev/ordertracker/internal/repo/mem-repo"
	redisrepo "github.com/GlebRadaev/ordertracker/internal/repo/redis-repo"
)

func NewMock(t *testing.T) (*Service, *MockSource, *MockTarget) {
	ctrl := gomock.NewController(t)
	source := NewMockSource(ctrl)
	target := NewMockTarget(ctrl)
	return New(source, target), source, target
}

func TestRun_NoExternalStore(t *testing.T) {
	service := New(memrepo.New(), nil)
	result, err := service.Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoExternalStore)
	assert.Nil(t, result)
}

func TestRun(t *testing.T) {
	service, source, target := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *domain.MigrationResult
		expectedError bool
	}{
		{
			name: "Everything is copied in order",
			prepareMock: func() {
				source.EXPECT().ListAllOrders(gomock.Any()).Return([]domain.Order{{ID: 2}, {ID: 1}}, nil)
				source.EXPECT().ListActivities(gomock.Any(), 0).Return([]domain.Activity{{ID: 3}, {ID: 2}, {ID: 1}}, nil)
				gomock.InOrder(
					target.EXPECT().ImportOrder(gomock.Any(), &domain.Order{ID: 1}).Return(nil),
					target.EXPECT().ImportOrder(gomock.Any(), &domain.Order{ID: 2}).Return(nil),
					target.EXPECT().ImportActivity(gomock.Any(), &domain.Activity{ID: 1}).Return(nil),
					target.EXPECT().ImportActivity(gomock.Any(), &domain.Activity{ID: 2}).Return(nil),
					target.EXPECT().ImportActivity(gomock.Any(), &domain.Activity{ID: 3}).Return(nil),
					target.EXPECT().TrimActivities(gomock.Any()).Return(nil),
				)
			},
			expected: &domain.MigrationResult{MigratedOrders: 2, MigratedActivities: 3},
		},
		{
			name: "Nothing to migrate",
			prepareMock: func() {
				source.EXPECT().ListAllOrders(gomock.Any()).Return([]domain.Order{}, nil)
				source.EXPECT().ListActivities(gomock.Any(), 0).Return([]domain.Activity{}, nil)
				target.EXPECT().TrimActivities(gomock.Any()).Return(nil)
			},
			expected: &domain.MigrationResult{},
		},
		{
			name: "Source fails",
			prepareMock: func() {
				source.EXPECT().ListAllOrders(gomock.Any()).Return(nil, errors.New("some error"))
			},
			expectedError: true,
		},
		{
			name: "Target fails midway",
			prepareMock: func() {
				source.EXPECT().ListAllOrders(gomock.Any()).Return([]domain.Order{{ID: 1}, {ID: 2}}, nil)
				source.EXPECT().ListActivities(gomock.Any(), 0).Return([]domain.Activity{}, nil)
				target.EXPECT().ImportOrder(gomock.Any(), &domain.Order{ID: 1}).Return(nil)
				target.EXPECT().ImportOrder(gomock.Any(), &domain.Order{ID: 2}).Return(errors.New("some error"))
			},
			expected:      &domain.MigrationResult{MigratedOrders: 1},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.Run(context.Background())
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRun_IntoRedis(t *testing.T) {
	ctx := context.Background()
	memory := memrepo.New()
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	for i := 1; i <= 3; i++ {
		id, err := memory.NextOrderID(ctx)
		require.NoError(t, err)
		require.NoError(t, memory.PutOrder(ctx, &domain.Order{
			ID:             id,
			Name:           fmt.Sprintf("Caja %d", id),
			Price:          decimal.NewFromInt(100),
			AlexPercentage: decimal.NewFromInt(10),
			PaidToAlex:     decimal.Zero,
			Month:          5 + i%2,
			Year:           2025,
			CreatedBy:      domain.UserAlex,
			CreatedAt:      now,
			UpdatedAt:      now,
		}))
		_, err = memory.AppendActivity(ctx, &domain.Activity{
			OrderID:   id,
			UserID:    domain.UserAlex,
			Action:    domain.ActionCreate,
			NewValue:  fmt.Sprintf("Caja %d", id),
			CreatedAt: now,
			OrderName: fmt.Sprintf("Caja %d", id),
			UserName:  "Alex",
		})
		require.NoError(t, err)
	}

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	target := redisrepo.New(client)

	result, err := New(memory, target).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.MigratedOrders)
	assert.Equal(t, 3, result.MigratedActivities)

	all, err := target.ListAllOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	activities, err := target.ListActivities(ctx, 0)
	require.NoError(t, err)
	require.Len(t, activities, 3)
	assert.Equal(t, 3, activities[0].ID)
	assert.Equal(t, 1, activities[2].ID)

	next, err := target.NextOrderID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, next)
}
