package clients

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID   int    `json:"user_id"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Invalid credentials"}`))
			return
		}
		http.SetCookie(w, &http.Cookie{Name: CookieName, Value: "token-for-user", Path: "/"})
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	mux.HandleFunc("/api/storage", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token-for-user" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
			return
		}
		_, _ = w.Write([]byte(`{"backend":"redis"}`))
	})
	mux.HandleFunc("/api/export/orders", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="pedidos-junio-2025-2025-06-10.csv"`)
		_, _ = w.Write([]byte(r.URL.RawQuery))
	})
	mux.HandleFunc("/api/migrate-to-kv", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"No external storage configured","details":"external store is not configured"}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestLoginAndGet(t *testing.T) {
	server := newServer(t)
	client := NewHTTPClient(server.URL + "/")
	ctx := context.Background()

	_, err := client.Get(ctx, "/api/storage", nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	require.NoError(t, client.Login(ctx, 1, "secret"))

	resp, err := client.Get(ctx, "/api/storage", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"backend":"redis"}`, string(resp.Body))
}

func TestLogin_WrongPassword(t *testing.T) {
	server := newServer(t)
	client := NewHTTPClient(server.URL)

	err := client.Login(context.Background(), 1, "nope")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.Equal(t, "401 Invalid credentials", apiErr.Error())
}

func TestGet_QueryAndFilename(t *testing.T) {
	server := newServer(t)
	client := NewHTTPClient(server.URL)

	resp, err := client.Get(context.Background(), "/api/export/orders", url.Values{"month": {"6"}, "year": {"2025"}})
	require.NoError(t, err)
	assert.Equal(t, "month=6&year=2025", string(resp.Body))
	assert.Equal(t, "pedidos-junio-2025-2025-06-10.csv", resp.Filename())
}

func TestPost_APIErrorDetails(t *testing.T) {
	server := newServer(t)
	client := NewHTTPClient(server.URL)

	_, err := client.Post(context.Background(), "/api/migrate-to-kv", nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "400 No external storage configured: external store is not configured", apiErr.Error())
}

type stubClient struct {
	resp *http.Response
	err  error
}

func (s *stubClient) Do(*http.Request) (*http.Response, error) {
	return s.resp, s.err
}

func TestDo_TransportError(t *testing.T) {
	client := NewHTTPClient("http://ordertracker.invalid")
	client.SetClient(&stubClient{err: errors.New("dial tcp: no such host")})

	_, err := client.Get(context.Background(), "/api/storage", nil)
	assert.EqualError(t, err, "dial tcp: no such host")
}

func TestDo_PlainTextError(t *testing.T) {
	client := NewHTTPClient("http://ordertracker.invalid")
	client.SetClient(&stubClient{resp: &http.Response{
		StatusCode: http.StatusBadGateway,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader("bad gateway")),
	}})

	_, err := client.Get(context.Background(), "/api/storage", nil)
	assert.EqualError(t, err, "502 Bad Gateway")
}

func TestLogin_NoCookie(t *testing.T) {
	client := NewHTTPClient("http://ordertracker.invalid")
	client.SetClient(&stubClient{resp: &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(`{"success":true}`)),
	}})

	err := client.Login(context.Background(), 1, "")
	assert.ErrorIs(t, err, ErrNoSession)
}
