package summarizer

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey means the pg_summarizer.api_key setting is absent or
// null. The key has no default; an operator must provision it.
var ErrMissingAPIKey = errors.New("got null for 'pg_summarizer.api_key' setting")

// ErrMalformedResponse means the endpoint answered with a success status
// but the body did not contain choices[0].message.content as a usable
// string, or was not valid JSON at all.
var ErrMalformedResponse = errors.New("unexpected response format")

// RequestError means the request could not be constructed, for example
// because the API key contains bytes that are illegal in an HTTP header
// value. No network call was made.
type RequestError struct {
	Reason string
}

func (e *RequestError) Error() string {
	return "could not build request: " + e.Reason
}

// TransportError wraps a network-level failure reaching the endpoint:
// DNS, connection refused, TLS, or I/O mid-response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError means the endpoint was reachable but answered outside the 2xx
// range. Status is kept so callers can tell a 401 from a 429 from a 5xx.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request failed with status: %d", e.Status)
	}
	return fmt.Sprintf("request failed with status: %d: %s", e.Status, e.Body)
}
