package netbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vovashkil/netbox-api-scripts/internal/nbctl"
)

const sitesPath = "/api/dcim/sites/"

// Site represents a NetBox DCIM site.
// The ID is assigned by NetBox and is never supplied by a caller.
type Site struct {
	ID     int     `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Slug   string  `json:"slug" yaml:"slug"`
	Status Status  `json:"status" yaml:"status"`
	Tags   TagList `json:"tags" yaml:"tags"`
}

// CreateSiteRequest represents the request to create a new site
type CreateSiteRequest struct {
	Name   string  `json:"name"`
	Slug   string  `json:"slug"`
	Status Status  `json:"status"`
	Tags   TagList `json:"tags,omitempty"`
}

// NewCreateSiteRequest builds a create request from the desired attributes,
// deriving the slug from the name.
func NewCreateSiteRequest(name string, status Status, tags []string) CreateSiteRequest {
	return CreateSiteRequest{
		Name:   name,
		Slug:   Slugify(name),
		Status: status,
		Tags:   tags,
	}
}

// ListSites retrieves every site, walking all result pages.
func (c *Client) ListSites(ctx context.Context) ([]Site, error) {
	return collect[Site](ctx, c.http, sitesPath)
}

// FindSiteByName retrieves the site with exactly the given name.
// Absence is not an error: the result is (nil, nil) when no site matches.
// More than one match violates the name uniqueness this tool relies on and
// is reported as an ambiguity, never resolved by picking one.
func (c *Client) FindSiteByName(ctx context.Context, name string) (*Site, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sitesPath+"?name="+url.QueryEscape(name), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", requestErr(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var pg page[Site]
	if err := json.Unmarshal(body, &pg); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", nbctl.ErrUnexpectedResponse, err)
	}

	switch {
	case pg.Count == 0:
		return nil, nil
	case pg.Count > 1:
		return nil, fmt.Errorf("%w: name %q matched %d sites", nbctl.ErrAmbiguous, name, pg.Count)
	case len(pg.Results) != 1:
		return nil, fmt.Errorf("%w: count is 1 but response carries %d results", nbctl.ErrUnexpectedResponse, len(pg.Results))
	}

	return &pg.Results[0], nil
}

// CreateSite creates a new site. A duplicate-name response stays
// distinguishable from other failures through APIError.Conflict; deciding
// what a duplicate means is the orchestration layer's job.
func (c *Client) CreateSite(ctx context.Context, request CreateSiteRequest) (*Site, error) {
	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sitesPath, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", requestErr(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var site Site
	if err := json.Unmarshal(body, &site); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", nbctl.ErrUnexpectedResponse, err)
	}

	return &site, nil
}

// DeleteSite deletes the site with the given ID. NetBox answers 204 on
// success; a 404 stays distinguishable through APIError.NotFound.
func (c *Client) DeleteSite(ctx context.Context, id int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, sitesPath+strconv.Itoa(id)+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", requestErr(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return nil
}
