// Package api is the portal's only gateway to the WasteWise backend. It
// translates typed resource operations into HTTP calls, attaches the bearer
// token carried in the request context, and normalizes the backend's
// JSON-or-text response shapes before anything reaches a caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// Client talks to one backend origin. It carries no retry, timeout or cache
// policy; callers own cancellation through the context.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// Error is a non-2xx backend response. Message is taken from the body's
// message/error field when present, else the raw body.
type Error struct {
	Status  int
	Message string
	Body    string
}

func (e *Error) Error() string {
	return e.Message
}

// ErrorMessage is the single point every caller uses to turn an error into a
// user-displayable string.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Status == http.StatusUnauthorized {
			return "Session expired. Please login again."
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	if msg := err.Error(); msg != "" && !strings.Contains(msg, "connection refused") {
		return msg
	}
	return "An unexpected error occurred. Please try again."
}

// IsUnauthorized reports whether err is a backend 401, which forces the
// portal back to the sign-in screen.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

type tokenKey struct{}

// WithToken stores the session's bearer token for calls made with ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	if tok, ok := ctx.Value(tokenKey{}).(string); ok {
		return tok
	}
	return ""
}

// do performs one request and returns the raw body. A missing token simply
// omits the Authorization header; it never fails fast.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := tokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Warn("api request failed")
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{
			Status:  resp.StatusCode,
			Message: extractMessage(resp.Header.Get("Content-Type"), data),
			Body:    string(data),
		}
		logrus.WithFields(logrus.Fields{
			"path":   path,
			"status": resp.StatusCode,
		}).Warn("api request rejected: ", apiErr.Message)
		return nil, apiErr
	}

	return data, nil
}

// extractMessage pulls message/error out of a JSON error body, falling back
// to the raw text.
func extractMessage(contentType string, body []byte) string {
	raw := strings.TrimSpace(string(body))
	if strings.Contains(contentType, "application/json") {
		var envelope struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(body, &envelope); err == nil {
			if envelope.Message != "" {
				return envelope.Message
			}
			if envelope.Error != "" {
				return envelope.Error
			}
		}
	}
	if raw == "" {
		return "Request failed"
	}
	return raw
}

// decodeList accepts the backend's interchangeable list shapes: a bare
// array, {"data": [...]}, or any single keyed wrapper holding the array.
// Normalized here once so ambiguity never leaks into callers.
func decodeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(trimmed, &items); err == nil {
		return items, nil
	}

	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &keyed); err != nil {
		return nil, err
	}
	if raw, ok := keyed["data"]; ok {
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
	}
	for _, raw := range keyed {
		inner := bytes.TrimSpace(raw)
		if len(inner) > 0 && inner[0] == '[' {
			if err := json.Unmarshal(inner, &items); err == nil {
				return items, nil
			}
		}
	}
	return []T{}, nil
}

// decodeOne accepts a bare object or a {"data": {...}} wrapper.
func decodeOne[T any](data []byte) (T, error) {
	var item T
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return item, nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err == nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &item); err == nil {
			return item, nil
		}
	}
	err := json.Unmarshal(trimmed, &item)
	return item, err
}
