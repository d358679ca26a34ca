package summary

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ordertracker/internal/domain"
	"github.com/GlebRadaev/ordertracker/internal/dto"
)

func NewMock(t *testing.T) (*SummaryHandler, *MockService, *MockOrderService) {
	ctrl := gomock.NewController(t)
	summaryService := NewMockService(ctrl)
	orderService := NewMockOrderService(ctrl)
	handler := New(summaryService, orderService)
	handler.now = func() time.Time { return time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC) }
	return handler, summaryService, orderService
}

func juneSummary() *domain.Summary {
	return &domain.Summary{
		Total: domain.Totals{
			Orders:         2,
			AlexPercentage: decimal.NewFromInt(15),
			Paid:           decimal.Zero,
			Pending:        decimal.NewFromInt(15),
		},
		CurrentMonth: domain.Totals{
			Orders:         1,
			AlexPercentage: decimal.NewFromInt(10),
			Paid:           decimal.Zero,
			Pending:        decimal.NewFromInt(10),
		},
		PreviousMonths: domain.Totals{
			Orders:         1,
			AlexPercentage: decimal.NewFromInt(5),
			Paid:           decimal.Zero,
			Pending:        decimal.NewFromInt(5),
		},
		PendingByMonth: []domain.MonthPending{
			{Month: 5, Year: 2025, MonthName: "Mayo", Pending: decimal.NewFromInt(5), Orders: 1},
			{Month: 6, Year: 2025, MonthName: "Junio", Pending: decimal.NewFromInt(10), Orders: 1},
		},
		ReferenceMonth: 6,
		ReferenceYear:  2025,
	}
}

func TestGetSummary(t *testing.T) {
	handler, summaryService, _ := NewMock(t)

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Defaults to the current month",
			url:  "/api/orders/summary",
			prepareMock: func() {
				summaryService.EXPECT().GetSummary(gomock.Any(), 6, 2025).Return(juneSummary(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Year is not a number",
			url:          "/api/orders/summary?month=6&year=last",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Store failure",
			url:  "/api/orders/summary?month=5&year=2025",
			prepareMock: func() {
				summaryService.EXPECT().GetSummary(gomock.Any(), 5, 2025).Return(nil, errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			handler.GetSummary(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestGetSummary_Body(t *testing.T) {
	handler, summaryService, _ := NewMock(t)
	summaryService.EXPECT().GetSummary(gomock.Any(), 6, 2025).Return(juneSummary(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/summary?month=6&year=2025", nil)
	rec := httptest.NewRecorder()
	handler.GetSummary(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"totalOrders": 2,
		"totalAlexPercentage": 15.00,
		"totalPaid": 0.00,
		"totalPending": 15.00,
		"currentMonth": {"orders": 1, "alexPercentage": 10.00, "paid": 0.00, "pending": 10.00},
		"previousMonths": {"orders": 1, "alexPercentage": 5.00, "paid": 0.00, "pending": 5.00},
		"pendingByMonth": [
			{"month": 5, "year": 2025, "monthName": "Mayo", "pending": 5.00, "orders": 1},
			{"month": 6, "year": 2025, "monthName": "Junio", "pending": 10.00, "orders": 1}
		],
		"referenceMonth": 6,
		"referenceYear": 2025
	}`, rec.Body.String())
}

func TestGetDashboard(t *testing.T) {
	handler, summaryService, orderService := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Orders and summary together",
			prepareMock: func() {
				orderService.EXPECT().ListByBucket(gomock.Any(), 6, 2025).
					Return([]domain.Order{{ID: 1, Name: "Caja 1", Month: 6, Year: 2025}}, nil)
				summaryService.EXPECT().GetSummary(gomock.Any(), 6, 2025).Return(juneSummary(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Orders fail",
			prepareMock: func() {
				orderService.EXPECT().ListByBucket(gomock.Any(), 6, 2025).Return(nil, errors.New("redis down"))
				summaryService.EXPECT().GetSummary(gomock.Any(), 6, 2025).Return(juneSummary(), nil).AnyTimes()
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "Summary fails",
			prepareMock: func() {
				orderService.EXPECT().ListByBucket(gomock.Any(), 6, 2025).Return([]domain.Order{}, nil).AnyTimes()
				summaryService.EXPECT().GetSummary(gomock.Any(), 6, 2025).Return(nil, errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, summaryService, orderService = NewMock(t)
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
			rec := httptest.NewRecorder()
			handler.GetDashboard(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.DashboardDTO
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				require.Len(t, resp.Orders, 1)
				assert.Equal(t, "Caja 1", resp.Orders[0].Name)
				assert.Equal(t, 2, resp.Summary.TotalOrders)
			}
		})
	}
}
