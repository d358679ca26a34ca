package auth

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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ordertracker/internal/domain"
	"github.com/GlebRadaev/ordertracker/internal/dto"
	pkgauth "github.com/GlebRadaev/ordertracker/pkg/auth"
	"github.com/GlebRadaev/ordertracker/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, true)
	return handler, service
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	expiresAt := time.Date(2025, time.June, 17, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectCookie  bool
	}{
		{
			name: "Successful login",
			body: `{"password":"secret","user_id":2}`,
			prepareMock: func() {
				service.EXPECT().Login(context.Background(), 2, "secret").
					Return(&domain.Session{UserID: 2, Token: "some-jwt-token", ExpiresAt: expiresAt}, nil)
			},
			expectedCode: http.StatusOK,
			expectCookie: true,
		},
		{
			name: "User defaults to Alex",
			body: `{"password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Login(context.Background(), 1, "secret").
					Return(&domain.Session{UserID: 1, Token: "some-jwt-token", ExpiresAt: expiresAt}, nil)
			},
			expectedCode: http.StatusOK,
			expectCookie: true,
		},
		{
			name:          "Invalid request body",
			body:          `{"password":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Wrong password",
			body: `{"password":"nope","user_id":1}`,
			prepareMock: func() {
				service.EXPECT().Login(context.Background(), 1, "nope").Return(nil, domain.ErrUnauthorized)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Unknown user",
			body: `{"password":"secret","user_id":7}`,
			prepareMock: func() {
				service.EXPECT().Login(context.Background(), 7, "secret").
					Return(nil, fmt.Errorf("%w: unknown user 7", domain.ErrValidation))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request",
		},
		{
			name: "Token failure",
			body: `{"password":"secret","user_id":1}`,
			prepareMock: func() {
				service.EXPECT().Login(context.Background(), 1, "secret").Return(nil, errors.New("signing failed"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler.Login(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				assert.Empty(t, rec.Result().Cookies())
				return
			}

			var resp dto.LoginResponseDTO
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.True(t, resp.Success)
			assert.Equal(t, "2025-06-17T12:00:00Z", resp.ExpiresAt)

			cookies := rec.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, pkgauth.CookieName, cookies[0].Name)
			assert.Equal(t, "some-jwt-token", cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
			assert.True(t, cookies[0].Secure)
			assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	handler, _ := NewMock(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/auth", nil)
	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, pkgauth.CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
