// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	httpClientRetryCount   = 2
	httpClientRetryWait    = 100 * time.Millisecond
	httpClientRetryMaxWait = 400 * time.Millisecond
)

// HTTPClient embeds *resty.Client so all of its methods are available
// directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that retries GET requests
// failing with a transport error or a 502, 503 or 504 status.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRetryCount(httpClientRetryCount).
		SetRetryWaitTime(httpClientRetryWait).
		SetRetryMaxWaitTime(httpClientRetryMaxWait).
		AddRetryCondition(retryableGET)

	return &HTTPClient{Client: client}
}

func retryableGET(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil || resp.Request.Method != http.MethodGet {
		return false
	}
	if err != nil {
		return true
	}

	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
