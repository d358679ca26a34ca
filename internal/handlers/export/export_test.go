package export

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ordertracker/internal/domain"
)

func NewMock(t *testing.T) (*ExportHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestExportOrders(t *testing.T) {
	handler, service := NewMock(t)
	csv := []byte("ID,Nombre del Pedido\n1,Caja 1\n")

	tests := []struct {
		name             string
		url              string
		prepareMock      func()
		expectedCode     int
		expectedFilename string
	}{
		{
			name: "One month",
			url:  "/api/export/orders?month=6&year=2025",
			prepareMock: func() {
				service.EXPECT().Orders(context.Background(), domain.ExportScope{Month: 6, Year: 2025}).
					Return(&domain.CSVFile{Filename: "pedidos-junio-2025-2025-06-10.csv", Data: csv}, nil)
			},
			expectedCode:     http.StatusOK,
			expectedFilename: "pedidos-junio-2025-2025-06-10.csv",
		},
		{
			name: "Everything",
			url:  "/api/export/orders?all=true",
			prepareMock: func() {
				service.EXPECT().Orders(context.Background(), domain.ExportScope{All: true}).
					Return(&domain.CSVFile{Filename: "pedidos-todos-2025-06-10.csv", Data: csv}, nil)
			},
			expectedCode:     http.StatusOK,
			expectedFilename: "pedidos-todos-2025-06-10.csv",
		},
		{
			name:         "All is not a boolean",
			url:          "/api/export/orders?all=maybe",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Month is not a number",
			url:          "/api/export/orders?month=junio&year=2025",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Month out of range",
			url:  "/api/export/orders?month=13&year=2025",
			prepareMock: func() {
				service.EXPECT().Orders(context.Background(), domain.ExportScope{Month: 13, Year: 2025}).
					Return(nil, domain.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			handler.ExportOrders(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
				assert.Equal(t, `attachment; filename="`+tt.expectedFilename+`"`, rec.Header().Get("Content-Disposition"))
				assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
				assert.Equal(t, string(csv), rec.Body.String())
			}
		})
	}
}

func TestExportActivityLog(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Activity csv",
			prepareMock: func() {
				service.EXPECT().Activities(context.Background()).
					Return(&domain.CSVFile{Filename: "registro-actividad-2025-06-10.csv", Data: []byte("ID\n")}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Store failure",
			prepareMock: func() {
				service.EXPECT().Activities(context.Background()).Return(nil, errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/export/activity-log", nil)
			rec := httptest.NewRecorder()
			handler.ExportActivityLog(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, `attachment; filename="registro-actividad-2025-06-10.csv"`, rec.Header().Get("Content-Disposition"))
				assert.Equal(t, "ID\n", rec.Body.String())
			}
		})
	}
}
