package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vovashkil/netbox-api-scripts/internal/netbox"
	"github.com/vovashkil/netbox-api-scripts/internal/sites"
	"github.com/vovashkil/netbox-api-scripts/internal/ui"
)

var _ sites.SiteAPI = (*mockSiteAPI)(nil)

type mockSiteAPI struct {
	listSites      func(ctx context.Context) ([]netbox.Site, error)
	findSiteByName func(ctx context.Context, name string) (*netbox.Site, error)
	createSite     func(ctx context.Context, request netbox.CreateSiteRequest) (*netbox.Site, error)
	deleteSite     func(ctx context.Context, id int) error
}

func (m *mockSiteAPI) ListSites(ctx context.Context) ([]netbox.Site, error) {
	return m.listSites(ctx)
}

func (m *mockSiteAPI) FindSiteByName(ctx context.Context, name string) (*netbox.Site, error) {
	return m.findSiteByName(ctx, name)
}

func (m *mockSiteAPI) CreateSite(ctx context.Context, request netbox.CreateSiteRequest) (*netbox.Site, error) {
	return m.createSite(ctx, request)
}

func (m *mockSiteAPI) DeleteSite(ctx context.Context, id int) error {
	return m.deleteSite(ctx, id)
}

func newTestManager(t *testing.T, api sites.SiteAPI) *sites.Manager {
	t.Helper()
	m, err := sites.NewManager(nil, sites.WithAPI(api))
	require.NoError(t, err)
	return m
}

var _ ui.Provider = (*mockUI)(nil)

// mockUI records every Provider call so command tests can assert rendering.
type mockUI struct {
	infos     []string
	headings  []string
	keyValues map[string]string
	tables    [][][]string
	headers   [][]string
	warnings  []string
	successes []string
	jsonData  []any
	yamlData  []any
}

func (m *mockUI) RunWithSpinner(_ string, operation func() error) error {
	return operation()
}

func (m *mockUI) ShowInfo(message string) {
	m.infos = append(m.infos, message)
}

func (m *mockUI) ShowHeading(message string) {
	m.headings = append(m.headings, message)
}

func (m *mockUI) ShowKeyValue(key, value string) {
	if m.keyValues == nil {
		m.keyValues = map[string]string{}
	}
	m.keyValues[key] = value
}

func (m *mockUI) ShowTable(headers []string, rows [][]string) {
	m.headers = append(m.headers, headers)
	m.tables = append(m.tables, rows)
}

func (m *mockUI) NewLine() {}

func (m *mockUI) ShowWarning(message string) {
	m.warnings = append(m.warnings, message)
}

func (m *mockUI) ShowSuccess(message string) {
	m.successes = append(m.successes, message)
}

func (m *mockUI) ShowJSON(data any) error {
	m.jsonData = append(m.jsonData, data)
	return nil
}

func (m *mockUI) ShowYAML(data any) error {
	m.yamlData = append(m.yamlData, data)
	return nil
}
