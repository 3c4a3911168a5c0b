package sites

import (
	"context"

	"github.com/vovashkil/netbox-api-scripts/internal/netbox"
)

var _ SiteAPI = (*mockAPI)(nil)

// mockAPI is a func-field fake of the NetBox client that also counts calls,
// so tests can assert the one-query-plus-at-most-one-mutation budget.
type mockAPI struct {
	listSites      func(ctx context.Context) ([]netbox.Site, error)
	findSiteByName func(ctx context.Context, name string) (*netbox.Site, error)
	createSite     func(ctx context.Context, request netbox.CreateSiteRequest) (*netbox.Site, error)
	deleteSite     func(ctx context.Context, id int) error

	listCalls   int
	findCalls   int
	createCalls int
	deleteCalls int
}

func (m *mockAPI) ListSites(ctx context.Context) ([]netbox.Site, error) {
	m.listCalls++
	return m.listSites(ctx)
}

func (m *mockAPI) FindSiteByName(ctx context.Context, name string) (*netbox.Site, error) {
	m.findCalls++
	return m.findSiteByName(ctx, name)
}

func (m *mockAPI) CreateSite(ctx context.Context, request netbox.CreateSiteRequest) (*netbox.Site, error) {
	m.createCalls++
	return m.createSite(ctx, request)
}

func (m *mockAPI) DeleteSite(ctx context.Context, id int) error {
	m.deleteCalls++
	return m.deleteSite(ctx, id)
}
