package cmd

import (
	"context"
	"strings"

	"github.com/vovashkil/netbox-api-scripts/internal/sites"
	"github.com/vovashkil/netbox-api-scripts/internal/telemetry"
	"github.com/vovashkil/netbox-api-scripts/internal/trace"
	"github.com/vovashkil/netbox-api-scripts/internal/ui"
)

// ListCmd lists every site known to NetBox.
type ListCmd struct {
	Output string `short:"o" default:"text" enum:"text,json,yaml" help:"Output format (text, json or yaml)."`
	Wide   bool   `help:"Show slug, status and tags for each site."`
}

func (c *ListCmd) Run(ctx context.Context, m *sites.Manager, telClient telemetry.Client, provider ui.Provider) error {
	ctx, span := trace.NewSpan(ctx, "nbctl list")
	defer span.End()

	return telClient.Wrap(ctx, telemetry.SiteList, func() error {
		siteList, err := m.List(ctx)
		if err != nil {
			return trace.CaptureError(ctx, err)
		}

		if c.Output != "text" {
			return RenderOutput(provider, siteList, c.Output)
		}

		if len(siteList) == 0 {
			provider.ShowInfo("No sites found.")
			return nil
		}

		if c.Wide {
			rows := make([][]string, 0, len(siteList))
			for _, site := range siteList {
				rows = append(rows, []string{
					site.Name,
					site.Slug,
					string(site.Status),
					strings.Join(site.Tags, ","),
				})
			}
			provider.ShowTable([]string{"NAME", "SLUG", "STATUS", "TAGS"}, rows)
			return nil
		}

		provider.ShowHeading("Existing sites:")
		for _, site := range siteList {
			provider.ShowInfo("- " + site.Name)
		}
		return nil
	})
}
