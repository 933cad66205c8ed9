package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is a non-2xx backend response. Detail carries the server-provided
// message when one was present.
type Error struct {
	StatusCode int
	Detail     string
}

// Error ...
func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}

	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Detail)
}

// Unwrap maps well-known statuses onto sentinel errors so callers can use
// errors.Is without inspecting status codes.
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	}

	return nil
}

// errorDetail is the backend's error body: detail is either a plain string
// or a structured list of field errors.
type errorDetail struct {
	Detail json.RawMessage `json:"detail"`
}

// ParseErrorDetail extracts a human-readable message from an error
// response body. For a structured list the first entry's msg wins; an
// unrecognized body yields the empty string and the caller falls back to a
// generic message.
func ParseErrorDetail(body []byte) string {
	var resp errorDetail
	if err := json.Unmarshal(body, &resp); err != nil || len(resp.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(resp.Detail, &s); err == nil {
		return s
	}

	var list []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(resp.Detail, &list); err == nil && len(list) > 0 {
		return list[0].Msg
	}

	return ""
}
