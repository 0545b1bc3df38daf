// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the upstream clients.
package httputil

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxSnippet bounds how much of an error body is kept for messages.
const maxSnippet = 200

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	// Code is the HTTP status code.
	Code int

	// Body is a truncated snippet of the response body, for messages only.
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream returned HTTP %d", e.Code)
	}
	return fmt.Sprintf("upstream returned HTTP %d: %s", e.Code, e.Body)
}

// NotFound reports whether the error is a 404.
func (e *StatusError) NotFound() bool { return e.Code == http.StatusNotFound }

// IsNotFound reports whether err wraps a 404 StatusError.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.NotFound()
}

// CheckStatus returns a StatusError when the response status is outside
// the 2xx range, consuming the body for the message snippet.
func CheckStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxSnippet))
	return &StatusError{Code: resp.StatusCode, Body: string(snippet)}
}

// DrainClose discards any unread body and closes it so the underlying
// connection returns to the pool.
func DrainClose(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
