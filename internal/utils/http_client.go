package utils

import (
	"github.com/go-resty/resty/v2"
)

// CorrelationHeader carries a per-request id so individual calls can be
// matched against remote-side logs.
const CorrelationHeader = "X-Epic-Correlation-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Every outbound request is stamped with a fresh correlation id in the
// X-Epic-Correlation-ID header.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New()

	ids := NewUUIDGenerator()
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader(CorrelationHeader, ids.Generate())
		return nil
	})

	return &HTTPClient{Client: client}
}
