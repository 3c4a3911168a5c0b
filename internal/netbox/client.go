package netbox

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/vovashkil/netbox-api-scripts/internal/nbctl"
)

// Client handles NetBox REST API operations
type Client struct {
	http HTTPDoer
}

// HTTPDoer interface for making HTTP requests
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient creates a new NetBox API client
func NewClient(http HTTPDoer) *Client {
	return &Client{
		http: http,
	}
}

// requestErr classifies a transport-level failure from the HTTPDoer.
// Timeouts (deadline or the http.Client timeout) and every other network
// failure map to different taxonomy sentinels.
func requestErr(err error) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return fmt.Errorf("%w: %w", nbctl.ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", nbctl.ErrNetwork, err)
}
