// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultHTTPTimeout applies when HTTPClientConfig.Timeout is not positive.
const DefaultHTTPTimeout = 30 * time.Second

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientConfig configures a new [HTTPClient].
type HTTPClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// NewHTTPClient creates an independent resty-backed client with its own
// connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientConfig{BaseURL: "https://api.pinata.cloud"})
//	resp, err := client.R().SetAuthToken(jwt).Post("/pinning/pinFileToIPFS")
func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultHTTPTimeout
	}

	client := resty.New().SetTimeout(cfg.Timeout)
	if cfg.BaseURL != "" {
		client.SetBaseURL(cfg.BaseURL)
	}
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &HTTPClient{Client: client}
}
