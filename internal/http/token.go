package http

import "net/http"

// TokenClient decorates an HTTPDoer, attaching NetBox token authentication
// and content negotiation headers to every request.
type TokenClient struct {
	doer  HTTPDoer
	token string
}

// NewTokenClient creates a TokenClient around doer using the given API token.
func NewTokenClient(token string, doer HTTPDoer) *TokenClient {
	return &TokenClient{
		doer:  doer,
		token: token,
	}
}

// Do performs an HTTP request with the authentication headers set.
func (c *TokenClient) Do(req *http.Request) (*http.Response, error) {
	if req.Header == nil {
		req.Header = http.Header{}
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/json")

	return c.doer.Do(req)
}
