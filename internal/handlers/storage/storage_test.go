package storage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ordertracker/internal/domain"
)

func NewMock(t *testing.T) (*StorageHandler, *MockService, *MockMigrateService) {
	ctrl := gomock.NewController(t)
	storageService := NewMockService(ctrl)
	migrateService := NewMockMigrateService(ctrl)
	return New(storageService, migrateService), storageService, migrateService
}

func TestGetStatus(t *testing.T) {
	handler, storageService, _ := NewMock(t)
	checkedAt := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		status       *domain.StorageStatus
		expectedBody string
	}{
		{
			name:         "Healthy redis",
			status:       &domain.StorageStatus{Backend: "redis", External: true, Healthy: true, CheckedAt: checkedAt},
			expectedBody: `{"backend":"redis","external":true,"healthy":true,"checked_at":"2025-06-10T12:00:00Z"}`,
		},
		{
			name:         "Unreachable postgres",
			status:       &domain.StorageStatus{Backend: "postgres", External: true, Error: "connection refused", CheckedAt: checkedAt},
			expectedBody: `{"backend":"postgres","external":true,"healthy":false,"error":"connection refused","checked_at":"2025-06-10T12:00:00Z"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storageService.EXPECT().Status(context.Background()).Return(tt.status)

			req := httptest.NewRequest(http.MethodGet, "/api/storage", nil)
			rec := httptest.NewRecorder()
			handler.GetStatus(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestMigrate(t *testing.T) {
	handler, _, migrateService := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Migration completed",
			prepareMock: func() {
				migrateService.EXPECT().Run(context.Background()).
					Return(&domain.MigrationResult{MigratedOrders: 3, MigratedActivities: 5}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"success":true,"migratedOrders":3,"migratedActivities":5,"message":"Migración completada exitosamente"}`,
		},
		{
			name: "No external store",
			prepareMock: func() {
				migrateService.EXPECT().Run(context.Background()).Return(nil, domain.ErrNoExternalStore)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"No external storage configured","details":"external store is not configured"}`,
		},
		{
			name: "Target failure",
			prepareMock: func() {
				migrateService.EXPECT().Run(context.Background()).
					Return(&domain.MigrationResult{MigratedOrders: 1}, errors.New("migrate order 2: redis down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error","details":"migrate order 2: redis down"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/migrate-to-kv", nil)
			rec := httptest.NewRecorder()
			handler.Migrate(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}
