package sites

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovashkil/netbox-api-scripts/internal/config"
	nbhttp "github.com/vovashkil/netbox-api-scripts/internal/http"
	"github.com/vovashkil/netbox-api-scripts/internal/netbox"
)

// SiteAPI is the slice of the NetBox client the manager depends on.
type SiteAPI interface {
	ListSites(ctx context.Context) ([]netbox.Site, error)
	FindSiteByName(ctx context.Context, name string) (*netbox.Site, error)
	CreateSite(ctx context.Context, request netbox.CreateSiteRequest) (*netbox.Site, error)
	DeleteSite(ctx context.Context, id int) error
}

// Spec holds the desired site attributes for a create operation.
type Spec struct {
	Name   string
	Status netbox.Status
	Tags   []string
}

// Outcome is the terminal state of an idempotent operation.
type Outcome string

const (
	// Created means the site did not exist and was created.
	Created Outcome = "created"
	// AlreadyExists means the site already matched the requested attributes
	// and nothing was changed.
	AlreadyExists Outcome = "already-exists"
	// Deleted means the site existed and was deleted.
	Deleted Outcome = "deleted"
	// NotFound means the site was already absent and nothing was changed.
	NotFound Outcome = "not-found"
	// DifferentAttributes means a site with the requested name exists but its
	// status or tags differ. The remote resource is left untouched; whether
	// that is acceptable is the caller's policy decision.
	DifferentAttributes Outcome = "different-attributes"
)

// Result is the outcome of an idempotent operation, with the affected site
// when it is known. A create that lost the race to another writer reports
// AlreadyExists with a nil Site: learning the winner's attributes would cost
// a second query, which the call budget does not allow.
type Result struct {
	Outcome Outcome
	Site    *netbox.Site
}

// Manager implements list, create and delete as idempotent operations on
// top of the non-idempotent NetBox primitives. Every operation re-derives
// remote state by querying first, then performs at most one mutation.
type Manager struct {
	api SiteAPI
}

// Option for configuring the Manager, primarily exists for testing
type Option func(*Manager)

// WithAPI define the site API for this manager.
func WithAPI(api SiteAPI) Option {
	return func(m *Manager) {
		m.api = api
	}
}

// NewManager initializes the site manager from configuration, wiring the
// bounded-timeout HTTP client, token authentication and base URL resolution
// under the NetBox API client.
func NewManager(cfg *config.Config, opts ...Option) (*Manager, error) {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}

	if m.api == nil {
		doer := nbhttp.NewTokenClient(cfg.Token, nbhttp.NewDefaultClient(cfg.Timeout))
		base, err := nbhttp.NewClient(cfg.URL, doer)
		if err != nil {
			return nil, fmt.Errorf("unable to create http client: %w", err)
		}
		m.api = netbox.NewClient(base)
	}

	return m, nil
}

// List returns every site. Read-only, no idempotency concerns.
func (m *Manager) List(ctx context.Context) ([]netbox.Site, error) {
	return m.api.ListSites(ctx)
}

// Find returns the site with the given name, or nil when absent.
// Read-only, no idempotency concerns.
func (m *Manager) Find(ctx context.Context, name string) (*netbox.Site, error) {
	return m.api.FindSiteByName(ctx, name)
}

// Create makes sure a site with the requested name and attributes exists.
//
// The protocol is query-then-act: if the site already exists with the same
// attributes the result is AlreadyExists and no mutation happens; if it
// exists with different attributes the result is DifferentAttributes and no
// mutation happens either, existing resources are never overwritten. Only an
// absent site triggers the single create call. A conflict on that call means
// another writer created the name between the query and the mutation; that
// still satisfies the caller's intent, so it reports AlreadyExists rather
// than a failure.
func (m *Manager) Create(ctx context.Context, spec Spec) (Result, error) {
	existing, err := m.api.FindSiteByName(ctx, spec.Name)
	if err != nil {
		return Result{}, fmt.Errorf("unable to query site %q: %w", spec.Name, err)
	}

	if existing != nil {
		if existing.Status == spec.Status && existing.Tags.Equal(netbox.TagList(spec.Tags)) {
			return Result{Outcome: AlreadyExists, Site: existing}, nil
		}
		return Result{Outcome: DifferentAttributes, Site: existing}, nil
	}

	site, err := m.api.CreateSite(ctx, netbox.NewCreateSiteRequest(spec.Name, spec.Status, spec.Tags))
	if err != nil {
		var apiErr *netbox.APIError
		if errors.As(err, &apiErr) && apiErr.Conflict() {
			return Result{Outcome: AlreadyExists}, nil
		}
		return Result{}, fmt.Errorf("unable to create site %q: %w", spec.Name, err)
	}

	return Result{Outcome: Created, Site: site}, nil
}

// Delete makes sure no site with the given name exists.
//
// An absent site is NotFound and a success, deleting something that is
// already gone is not an error. A present site triggers the single delete
// call by ID; a 404 on that call means another writer deleted it between
// the query and the mutation, which is reported as NotFound.
func (m *Manager) Delete(ctx context.Context, name string) (Result, error) {
	existing, err := m.api.FindSiteByName(ctx, name)
	if err != nil {
		return Result{}, fmt.Errorf("unable to query site %q: %w", name, err)
	}

	if existing == nil {
		return Result{Outcome: NotFound}, nil
	}

	if err := m.api.DeleteSite(ctx, existing.ID); err != nil {
		var apiErr *netbox.APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			return Result{Outcome: NotFound, Site: existing}, nil
		}
		return Result{}, fmt.Errorf("unable to delete site %q: %w", name, err)
	}

	return Result{Outcome: Deleted, Site: existing}, nil
}
