// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func response(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		body     string
		wantErr  bool
		wantBody string
	}{
		{"200 OK", http.StatusOK, "", false, ""},
		{"201 Created", http.StatusCreated, "", false, ""},
		{"404 with body", http.StatusNotFound, `{"message":"not found"}`, true, `{"message":"not found"}`},
		{"500 empty body", http.StatusInternalServerError, "", true, ""},
		{"429 rate limited", http.StatusTooManyRequests, "slow down", true, "slow down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckStatus(response(tt.code, tt.body))
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			var se *StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.code, se.Code)
			assert.Equal(t, tt.wantBody, se.Body)
		})
	}
}

func TestCheckStatusTruncatesBody(t *testing.T) {
	long := strings.Repeat("x", 5000)
	err := CheckStatus(response(http.StatusBadGateway, long))

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Len(t, se.Body, maxSnippet)
}

func TestIsNotFound(t *testing.T) {
	nf := &StatusError{Code: http.StatusNotFound}
	assert.True(t, IsNotFound(nf))
	assert.True(t, IsNotFound(fmt.Errorf("CORE API /works/1: %w", nf)))

	assert.False(t, IsNotFound(&StatusError{Code: http.StatusInternalServerError}))
	assert.False(t, IsNotFound(errors.New("connection refused")))
	assert.False(t, IsNotFound(nil))
}

func TestStatusErrorMessage(t *testing.T) {
	assert.Equal(t, "upstream returned HTTP 503",
		(&StatusError{Code: 503}).Error())
	assert.Equal(t, "upstream returned HTTP 401: bad key",
		(&StatusError{Code: 401, Body: "bad key"}).Error())
}
