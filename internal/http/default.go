package http

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds every request unless configuration overrides it.
const DefaultTimeout = 10 * time.Second

// DefaultClient is the default HTTP client with the default timeout
var DefaultClient = NewDefaultClient(DefaultTimeout)

// NewDefaultClient returns an HTTP client bounded by the given timeout.
// The timeout covers the whole request, connection through body read.
func NewDefaultClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}
