package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

// Client talks to the backend REST API. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// New builds a Client for the given base URL (no trailing slash required).
// A zero timeout means no client-side limit.
func New(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string { return c.baseURL }

// do issues one HTTP call and returns the raw response body on success.
//
// A default Content-Type: application/json header is merged with the caller's
// headers; caller values win. On a non-2xx status it returns *Error with the
// captured exchange; a response body that cannot be read is recorded as
// absent, never as a failure of the capture itself.
func (c *Client) do(ctx context.Context, method, path string, body []byte, headers http.Header) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, vs := range headers {
		req.Header[http.CanonicalHeaderKey(k)] = vs
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	data, readErr := io.ReadAll(res.Body)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		responseBody := ""
		if readErr == nil {
			responseBody = string(data)
		}
		apiErr := &Error{Details: ErrorDetails{
			Status:       res.StatusCode,
			StatusText:   http.StatusText(res.StatusCode),
			URL:          path,
			Method:       method,
			RequestBody:  string(body),
			ResponseBody: responseBody,
			Timestamp:    time.Now().UTC(),
		}}
		c.log.Debug(ctx, "backend call failed", "method", method, "path", path, "status", res.StatusCode)
		return nil, apiErr
	}

	if readErr != nil {
		return nil, fmt.Errorf("read response %s %s: %w", method, path, readErr)
	}
	return data, nil
}

// decode parses data as T. An empty body yields the zero value, matching the
// backend's bodyless 200/204 responses on mutations.
func decode[T any](data []byte) (T, error) {
	var v T
	if len(data) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode response: %w", err)
	}
	return v, nil
}

func get[T any](ctx context.Context, c *Client, path string) (T, error) {
	data, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](data)
}

func post[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	var zero T
	var body []byte
	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return zero, fmt.Errorf("encode request: %w", err)
		}
	}
	data, err := c.do(ctx, http.MethodPost, path, body, nil)
	if err != nil {
		return zero, err
	}
	return decode[T](data)
}

func put(ctx context.Context, c *Client, path string, payload any) error {
	var body []byte
	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}
	_, err := c.do(ctx, http.MethodPut, path, body, nil)
	return err
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}
