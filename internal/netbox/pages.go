package netbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/vovashkil/netbox-api-scripts/internal/nbctl"
)

// page is the envelope NetBox wraps around every list response.
type page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// getPage fetches a single list page. The url may be a relative API path
// (the first page) or the absolute cursor NetBox returns in "next"; the
// base-resolving HTTP client passes absolute URLs through untouched.
func getPage[T any](ctx context.Context, doer HTTPDoer, url string) (page[T], error) {
	var pg page[T]

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return pg, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := doer.Do(req)
	if err != nil {
		return pg, fmt.Errorf("request failed: %w", requestErr(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return pg, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return pg, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, &pg); err != nil {
		return pg, fmt.Errorf("%w: failed to decode response: %w", nbctl.ErrUnexpectedResponse, err)
	}

	return pg, nil
}

// collect walks the paginated envelope from firstPath through every "next"
// cursor and materializes the union of all result pages. The walk always
// starts from the first page; a failed walk is reported whole, never as a
// truncated collection.
func collect[T any](ctx context.Context, doer HTTPDoer, firstPath string) ([]T, error) {
	var out []T

	url := firstPath
	for url != "" {
		pg, err := getPage[T](ctx, doer, url)
		if err != nil {
			return nil, err
		}
		out = append(out, pg.Results...)

		url = ""
		if pg.Next != nil {
			url = *pg.Next
		}
	}

	return out, nil
}
