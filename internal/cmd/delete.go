package cmd

import (
	"context"
	"fmt"

	"github.com/vovashkil/netbox-api-scripts/internal/sites"
	"github.com/vovashkil/netbox-api-scripts/internal/telemetry"
	"github.com/vovashkil/netbox-api-scripts/internal/trace"
	"github.com/vovashkil/netbox-api-scripts/internal/ui"
)

// DeleteCmd deletes a site if it exists. Deleting an absent site is a no-op.
type DeleteCmd struct {
	Name string `required:"" help:"Name of the site to delete."`
}

func (c *DeleteCmd) Run(ctx context.Context, m *sites.Manager, telClient telemetry.Client, provider ui.Provider) error {
	ctx, span := trace.NewSpan(ctx, "nbctl delete")
	defer span.End()

	telClient.Attr("site", c.Name)

	return telClient.Wrap(ctx, telemetry.SiteDelete, func() error {
		var result sites.Result
		err := provider.RunWithSpinner(fmt.Sprintf("Deleting site '%s'...", c.Name), func() error {
			var err error
			result, err = m.Delete(ctx, c.Name)
			return err
		})
		if err != nil {
			return trace.CaptureError(ctx, err)
		}

		if result.Outcome == sites.NotFound {
			provider.ShowInfo(fmt.Sprintf("Site '%s' does not exist. No action taken.", c.Name))
			return nil
		}

		provider.ShowSuccess("Site deleted successfully.")
		return nil
	})
}
