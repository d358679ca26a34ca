package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ordertracker/internal/domain"
	"github.com/GlebRadaev/ordertracker/pkg/auth"
	"github.com/GlebRadaev/ordertracker/pkg/utils"
)

var fixedNow = time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (http.Handler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	handler.now = func() time.Time { return fixedNow }

	r := chi.NewRouter()
	r.Get("/api/orders", handler.ListOrders)
	r.Post("/api/orders", handler.CreateOrder)
	r.Put("/api/orders/{id}", handler.UpdateOrder)
	r.Put("/api/orders/{id}/payment", handler.RegisterPayment)
	return r, service
}

func caja1() *domain.Order {
	return &domain.Order{
		ID:             1,
		Name:           "Caja 1",
		Price:          decimal.NewFromInt(100),
		AdvancePayment: decimal.Zero,
		AlexPercentage: decimal.NewFromInt(10),
		PaidToAlex:     decimal.Zero,
		Month:          6,
		Year:           2025,
		CreatedBy:      domain.UserAlex,
		CreatedAt:      fixedNow,
		UpdatedAt:      fixedNow,
	}
}

func serve(router http.Handler, method, url, body string, userID int) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	if userID != 0 {
		req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestListOrders(t *testing.T) {
	router, service := NewMock(t)

	tests := []struct {
		name          string
		url           string
		prepareMock   func()
		expectedCode  int
		expectedCount int
	}{
		{
			name: "Defaults to the current month",
			url:  "/api/orders",
			prepareMock: func() {
				service.EXPECT().ListByBucket(gomock.Any(), 6, 2025).Return([]domain.Order{*caja1()}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 1,
		},
		{
			name: "Explicit bucket with no orders",
			url:  "/api/orders?month=5&year=2024",
			prepareMock: func() {
				service.EXPECT().ListByBucket(gomock.Any(), 5, 2024).Return([]domain.Order{}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 0,
		},
		{
			name:         "Month is not a number",
			url:          "/api/orders?month=junio",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Month out of range",
			url:  "/api/orders?month=13&year=2025",
			prepareMock: func() {
				service.EXPECT().ListByBucket(gomock.Any(), 13, 2025).
					Return(nil, fmt.Errorf("%w: month must be between 1 and 12", domain.ErrValidation))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Store failure",
			url:  "/api/orders",
			prepareMock: func() {
				service.EXPECT().ListByBucket(gomock.Any(), 6, 2025).Return(nil, errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rec := serve(router, http.MethodGet, tt.url, "", 1)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var body []map[string]any
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Len(t, body, tt.expectedCount)
			}
		})
	}
}

func TestListOrders_Body(t *testing.T) {
	router, service := NewMock(t)
	service.EXPECT().ListByBucket(gomock.Any(), 6, 2025).Return([]domain.Order{*caja1()}, nil)

	rec := serve(router, http.MethodGet, "/api/orders", "", 1)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id": 1,
		"name": "Caja 1",
		"is_own_material": false,
		"price": 100.00,
		"advance_payment": 0.00,
		"alex_percentage": 10.00,
		"paid_to_alex": 0.00,
		"pending": 10.00,
		"month": 6,
		"year": 2025,
		"created_by": 1,
		"created_at": "2025-06-10T12:00:00Z",
		"updated_at": "2025-06-10T12:00:00Z"
	}]`, rec.Body.String())
}

func TestCreateOrder(t *testing.T) {
	router, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		userID        int
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Created by the caller",
			body:   `{"name":"Caja 1","price":100,"alex_percentage":"10","month":6,"year":2025}`,
			userID: 2,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 2, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, in domain.NewOrder) (*domain.Order, error) {
						assert.Equal(t, "Caja 1", in.Name)
						assert.Equal(t, "100.00", in.Price.StringFixed(2))
						assert.Equal(t, "10.00", in.AlexPercentage.StringFixed(2))
						assert.Equal(t, 0, in.CreatedBy)
						return caja1(), nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Malformed JSON",
			body:          `{"name":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Malformed amount",
			body:          `{"name":"Caja 1","price":"cien","month":6,"year":2025}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing name",
			body:          `{"price":100,"month":6,"year":2025}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request",
		},
		{
			name:          "Month out of range",
			body:          `{"name":"Caja 1","month":13,"year":2025}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request",
		},
		{
			name:          "Negative price",
			body:          `{"name":"Caja 1","price":-1,"month":6,"year":2025}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request",
		},
		{
			name:          "Unknown creator",
			body:          `{"name":"Caja 1","month":6,"year":2025,"created_by":3}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request",
		},
		{
			name: "Store failure",
			body: `{"name":"Caja 1","month":6,"year":2025}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 0, gomock.Any()).Return(nil, errors.New("redis down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rec := serve(router, http.MethodPost, "/api/orders", tt.body, tt.userID)

			assert.Equal(t, tt.expectedCode, rec.Code)
			body := decodeBody(t, rec)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			} else {
				assert.Equal(t, float64(1), body["id"])
				assert.Equal(t, float64(10), body["pending"])
			}
		})
	}
}

func TestUpdateOrder(t *testing.T) {
	router, service := NewMock(t)

	tests := []struct {
		name         string
		url          string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Only supplied fields are patched",
			url:  "/api/orders/1",
			body: `{"price":120}`,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), 1, 1, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ int, patch domain.OrderPatch) (*domain.Order, error) {
						require.NotNil(t, patch.Price)
						assert.Equal(t, "120.00", patch.Price.StringFixed(2))
						assert.Nil(t, patch.Name)
						assert.Nil(t, patch.AlexPercentage)
						assert.Nil(t, patch.Month)
						order := caja1()
						order.Price = decimal.NewFromInt(120)
						return order, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid id",
			url:          "/api/orders/abc",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid patch",
			url:          "/api/orders/1",
			body:         `{"month":0}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown order",
			url:  "/api/orders/99",
			body: `{"price":120}`,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), 1, 99, gomock.Any()).Return(nil, domain.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rec := serve(router, http.MethodPut, tt.url, tt.body, 1)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestRegisterPayment(t *testing.T) {
	router, service := NewMock(t)

	tests := []struct {
		name          string
		url           string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Payment settles the order",
			url:  "/api/orders/1/payment",
			body: `{"paid_to_alex":10,"payment_amount":10}`,
			prepareMock: func() {
				service.EXPECT().RegisterPayment(gomock.Any(), 2, 1, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ int, payment domain.Payment) (*domain.Order, error) {
						assert.Equal(t, "10.00", payment.Cumulative.StringFixed(2))
						assert.Equal(t, "10.00", payment.Increment.StringFixed(2))
						order := caja1()
						order.PaidToAlex = decimal.NewFromInt(10)
						return order, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Zero payment",
			url:           "/api/orders/1/payment",
			body:          `{"paid_to_alex":10,"payment_amount":0}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request",
		},
		{
			name: "Overpayment",
			url:  "/api/orders/1/payment",
			body: `{"paid_to_alex":11,"payment_amount":11}`,
			prepareMock: func() {
				service.EXPECT().RegisterPayment(gomock.Any(), 2, 1, gomock.Any()).
					Return(nil, fmt.Errorf("%w: paid amount must be between 0 and 10.00", domain.ErrValidation))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request",
		},
		{
			name: "Unknown order",
			url:  "/api/orders/99/payment",
			body: `{"paid_to_alex":1,"payment_amount":1}`,
			prepareMock: func() {
				service.EXPECT().RegisterPayment(gomock.Any(), 2, 99, gomock.Any()).Return(nil, domain.ErrOrderNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Order not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rec := serve(router, http.MethodPut, tt.url, tt.body, 2)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				assert.Equal(t, float64(0), decodeBody(t, rec)["pending"])
			}
		})
	}
}
