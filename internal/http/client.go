package http

import (
	"net/http"
	"net/url"
	"strings"
)

//go:generate mockgen -destination=mock/mock.go -package=mock . HTTPDoer

// HTTPDoer interface for making HTTP requests
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client handles HTTP requests with base URL resolution.
// Requests built with a path-only URL are joined onto the base URL, keeping
// any path prefix the deployment is served under. Requests that already
// carry an absolute URL (such as pagination cursors returned by the remote)
// pass through untouched.
type Client struct {
	doer    HTTPDoer
	baseURL *url.URL
}

// NewClient creates an HTTP client with any HTTPDoer implementation
func NewClient(baseURL string, doer HTTPDoer) (*Client, error) {
	parsedURL, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, err
	}

	return &Client{
		doer:    doer,
		baseURL: parsedURL,
	}, nil
}

// Do performs an HTTP request, prepending the base URL to relative requests
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if req.URL.IsAbs() {
		return c.doer.Do(req)
	}

	fullURL := *c.baseURL
	fullURL.Path = c.baseURL.Path + req.URL.Path
	fullURL.RawQuery = req.URL.RawQuery

	newReq := &http.Request{
		Method: req.Method,
		URL:    &fullURL,
		Header: req.Header,
		Body:   req.Body,
	}

	if req.Context() != nil {
		newReq = newReq.WithContext(req.Context())
	}

	return c.doer.Do(newReq)
}
