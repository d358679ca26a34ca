package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const timeout = time.Second * 15

// CookieName is the session cookie issued by the ordertracker API.
const CookieName = "auth-token"

var (
	ErrFailedCloseResponseBody = errors.New("failed close response body")
	ErrNoSession               = errors.New("login response carried no session cookie")
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Filename returns the attachment name from Content-Disposition, if any.
func (r *Response) Filename() string {
	_, params, err := mime.ParseMediaType(r.Header.Get("Content-Disposition"))
	if err != nil {
		return ""
	}
	return params["filename"]
}

// HTTPClient talks to the ordertracker API and keeps the session token
// between calls.
type HTTPClient struct {
	baseURL string
	client  HTTPClientI
	token   string
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (h *HTTPClient) SetClient(mock HTTPClientI) {
	h.client = mock
}

func (h *HTTPClient) SetToken(token string) {
	h.token = token
}

// Login posts the shared password and keeps the returned session cookie.
func (h *HTTPClient) Login(ctx context.Context, userID int, password string) error {
	resp, err := h.Post(ctx, "/api/auth", map[string]any{
		"user_id":  userID,
		"password": password,
	})
	if err != nil {
		return err
	}
	for _, cookie := range (&http.Response{Header: resp.Header}).Cookies() {
		if cookie.Name == CookieName && cookie.Value != "" {
			h.token = cookie.Value
			return nil
		}
	}
	return ErrNoSession
}

func (h *HTTPClient) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	target := h.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, err
	}
	return h.do(req)
}

// Post sends payload as JSON. A nil payload sends an empty body.
func (h *HTTPClient) Post(ctx context.Context, path string, payload any) (*Response, error) {
	body := io.Reader(http.NoBody)
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return h.do(req)
}

func (h *HTTPClient) do(req *http.Request) (result *Response, err error) {
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, respBody)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

func newAPIError(code int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: code, Message: http.StatusText(code)}
	var payload struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		apiErr.Message = payload.Error
		apiErr.Details = payload.Details
	}
	return apiErr
}
