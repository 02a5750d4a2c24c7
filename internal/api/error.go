package api

import (
	"errors"
	"fmt"
	"time"
)

// ErrorDetails captures one failed HTTP exchange. It is constructed only for
// responses whose status falls outside the 2xx range.
//
// RequestBody is empty for bodyless requests. ResponseBody is empty when the
// response body could not be read; a read failure never aborts the capture.
type ErrorDetails struct {
	Status       int       `json:"status"`
	StatusText   string    `json:"statusText"`
	URL          string    `json:"url"`
	Method       string    `json:"method"`
	RequestBody  string    `json:"requestBody,omitempty"`
	ResponseBody string    `json:"responseBody,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error is the error type raised by the transport wrapper for non-2xx
// responses. Callers pattern-match it with errors.As.
type Error struct {
	Details ErrorDetails
}

func (e *Error) Error() string {
	d := e.Details
	return fmt.Sprintf("API %d %s: %s %s", d.Status, d.StatusText, d.Method, d.URL)
}

// Extract returns the full detail record when err (or anything it wraps) is a
// transport *Error, and nil for every other error.
func Extract(err error) *ErrorDetails {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		d := apiErr.Details
		return &d
	}
	return nil
}

// FormatMessage derives a human-readable one-liner for any error: the wire
// summary for transport errors, the error's own message otherwise.
func FormatMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		d := apiErr.Details
		return fmt.Sprintf("%d %s — %s %s", d.Status, d.StatusText, d.Method, d.URL)
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
