package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/vovashkil/netbox-api-scripts/internal/config"
	"github.com/vovashkil/netbox-api-scripts/internal/sites"
	"github.com/vovashkil/netbox-api-scripts/internal/telemetry"
	"github.com/vovashkil/netbox-api-scripts/internal/trace"
	"github.com/vovashkil/netbox-api-scripts/internal/ui"
)

// BrowserLauncher opens a URL in the local browser. Primarily for testing purposes.
type BrowserLauncher func(url string) error

// OpenCmd opens the NetBox web UI: the site list, or one site's page when
// --name is given.
type OpenCmd struct {
	Name string `help:"Open this site's page instead of the site list."`
}

func (c *OpenCmd) Run(ctx context.Context, cfg *config.Config, m *sites.Manager, telClient telemetry.Client, provider ui.Provider, launcher BrowserLauncher) error {
	ctx, span := trace.NewSpan(ctx, "nbctl open")
	defer span.End()

	return telClient.Wrap(ctx, telemetry.SiteOpen, func() error {
		base := strings.TrimRight(cfg.URL, "/")
		url := base + "/dcim/sites/"

		if c.Name != "" {
			site, err := m.Find(ctx, c.Name)
			if err != nil {
				return trace.CaptureError(ctx, err)
			}
			if site == nil {
				provider.ShowInfo(fmt.Sprintf("Site '%s' does not exist. No action taken.", c.Name))
				return nil
			}
			url = fmt.Sprintf("%s/dcim/sites/%d/", base, site.ID)
		}

		provider.ShowInfo("Opening " + url)
		if err := launcher(url); err != nil {
			return trace.CaptureError(ctx, fmt.Errorf("unable to open browser: %w", err))
		}
		return nil
	})
}
