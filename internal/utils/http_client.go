package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader is the header carrying the trace id of an outbound request.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewBackendClient returns an HTTPClient bound to baseURL with the given
// request timeout. Every request gets an X-Trace-ID header: the trace id
// stored in the request context when present, otherwise a fresh one from gen.
func NewBackendClient(baseURL string, timeout time.Duration, gen *UUIDGenerator) *HTTPClient {
	client := NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if r.Header.Get(TraceIDHeader) != "" {
				return nil
			}
			if traceID, ok := GetTraceIDFromContext(r.Context()); ok {
				r.SetHeader(TraceIDHeader, traceID)
				return nil
			}
			r.SetHeader(TraceIDHeader, gen.Generate())
			return nil
		})

	return client
}
