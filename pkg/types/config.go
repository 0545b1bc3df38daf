// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for the upstream clients.
type HTTPConfig struct {
	// Timeout is the fixed per-request ceiling.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with every request
	// (e.g. "scholar-mcp/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ScholarConfig holds settings for the citation-index client.
type ScholarConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey authenticates every citation-index request. Required.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// FulltextConfig holds settings for the open-access aggregator client.
type FulltextConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is an optional bearer token. Without it requests proceed
	// unauthenticated at a lower rate allowance.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// DefaultTimeout is applied when a client is constructed with a zero
// timeout.
const DefaultTimeout = 30 * time.Second
