package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ordertracker/internal/config"
	"github.com/GlebRadaev/ordertracker/internal/handlers/activity"
	authhandlers "github.com/GlebRadaev/ordertracker/internal/handlers/auth"
	"github.com/GlebRadaev/ordertracker/internal/handlers/export"
	"github.com/GlebRadaev/ordertracker/internal/handlers/orders"
	"github.com/GlebRadaev/ordertracker/internal/handlers/storage"
	"github.com/GlebRadaev/ordertracker/internal/handlers/summary"
	"github.com/GlebRadaev/ordertracker/internal/service"
	"github.com/GlebRadaev/ordertracker/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		AuthService:     authhandlers.NewMockService(ctrl),
		OrderService:    orders.NewMockService(ctrl),
		SummaryService:  summary.NewMockService(ctrl),
		ActivityService: activity.NewMockService(ctrl),
		ExportService:   export.NewMockService(ctrl),
		StorageService:  storage.NewMockService(ctrl),
		MigrateService:  storage.NewMockMigrateService(ctrl),
		Tokens:          auth.NewJWTService("secret"),
		AuthRequired:    true,
	}

	h := New(services, &config.Config{CookieSecure: true})
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.True(t, h.authRequired)
}

func newRouter(t *testing.T, authRequired bool) chi.Router {
	ctrl := gomock.NewController(t)

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockSummaryHandler := NewMockSummaryHandler(ctrl)
	mockActivityHandler := NewMockActivityHandler(ctrl)
	mockExportHandler := NewMockExportHandler(ctrl)
	mockStorageHandler := NewMockStorageHandler(ctrl)

	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Logout(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().ListOrders(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().RegisterPayment(gomock.Any(), gomock.Any()).AnyTimes()
	mockSummaryHandler.EXPECT().GetSummary(gomock.Any(), gomock.Any()).AnyTimes()
	mockSummaryHandler.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).AnyTimes()
	mockActivityHandler.EXPECT().GetActivityLog(gomock.Any(), gomock.Any()).AnyTimes()
	mockExportHandler.EXPECT().ExportOrders(gomock.Any(), gomock.Any()).AnyTimes()
	mockExportHandler.EXPECT().ExportActivityLog(gomock.Any(), gomock.Any()).AnyTimes()
	mockStorageHandler.EXPECT().GetStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockStorageHandler.EXPECT().Migrate(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:     mockAuthHandler,
		OrderHandler:    mockOrderHandler,
		SummaryHandler:  mockSummaryHandler,
		ActivityHandler: mockActivityHandler,
		ExportHandler:   mockExportHandler,
		StorageHandler:  mockStorageHandler,
		tokens:          auth.NewJWTService("secret"),
		authRequired:    authRequired,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)
	return router
}

var protectedRoutes = []struct {
	method string
	url    string
}{
	{"GET", "/api/orders"},
	{"POST", "/api/orders"},
	{"GET", "/api/orders/summary"},
	{"PUT", "/api/orders/1"},
	{"PUT", "/api/orders/1/payment"},
	{"GET", "/api/dashboard"},
	{"GET", "/api/activity-log"},
	{"GET", "/api/export/orders"},
	{"GET", "/api/export/activity-log"},
	{"POST", "/api/migrate-to-kv"},
	{"GET", "/api/storage"},
}

func TestInitRoutes(t *testing.T) {
	router := newRouter(t, true)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth", http.StatusOK},
		{"DELETE", "/api/auth", http.StatusOK},
		{"GET", "/api/unknown", http.StatusNotFound},
	}
	for _, route := range protectedRoutes {
		tests = append(tests, struct {
			method string
			url    string
			status int
		}{route.method, route.url, http.StatusUnauthorized})
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutes_WithSession(t *testing.T) {
	router := newRouter(t, true)
	token, err := auth.NewJWTService("secret").GenerateJWT(2, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	for _, route := range protectedRoutes {
		t.Run(route.method+" "+route.url, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.url, nil)
			req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestInitRoutes_OpenAccess(t *testing.T) {
	router := newRouter(t, false)

	for _, route := range protectedRoutes {
		t.Run(route.method+" "+route.url, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
