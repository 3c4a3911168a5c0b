package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/vovashkil/netbox-api-scripts/internal/nbctl"
	"github.com/vovashkil/netbox-api-scripts/internal/netbox"
	"github.com/vovashkil/netbox-api-scripts/internal/sites"
	"github.com/vovashkil/netbox-api-scripts/internal/telemetry"
	"github.com/vovashkil/netbox-api-scripts/internal/trace"
	"github.com/vovashkil/netbox-api-scripts/internal/ui"
)

// CreateCmd creates a site unless one with the same name already exists.
type CreateCmd struct {
	Name   string   `required:"" help:"Name of the site to create."`
	Status string   `default:"${default_status}" enum:"planned,active,staged,decommissioning,decommissioned" help:"Site status (default: ${default_status})."`
	Tag    []string `sep:"," default:"${default_tag}" help:"Comma-separated tags (default: ${default_tag})."`
}

func (c *CreateCmd) Run(ctx context.Context, m *sites.Manager, telClient telemetry.Client, provider ui.Provider) error {
	ctx, span := trace.NewSpan(ctx, "nbctl create")
	defer span.End()

	telClient.Attr("site", c.Name)

	spec := sites.Spec{
		Name:   c.Name,
		Status: netbox.Status(c.Status),
		Tags:   c.Tag,
	}

	return telClient.Wrap(ctx, telemetry.SiteCreate, func() error {
		var result sites.Result
		err := provider.RunWithSpinner(fmt.Sprintf("Creating site '%s'...", c.Name), func() error {
			var err error
			result, err = m.Create(ctx, spec)
			return err
		})
		if err != nil {
			return trace.CaptureError(ctx, err)
		}

		switch result.Outcome {
		case sites.AlreadyExists:
			provider.ShowInfo(fmt.Sprintf("Site '%s' already exists. No action taken.", c.Name))
		case sites.DifferentAttributes:
			provider.ShowWarning(fmt.Sprintf("Site '%s' already exists with different attributes. No action taken.", c.Name))
			provider.NewLine()
			showAttributeDiff(provider, spec, result.Site)
			return trace.CaptureError(ctx, fmt.Errorf("%w: %s", nbctl.ErrAttributeConflict, c.Name))
		default:
			provider.ShowSuccess("Site created successfully.")
		}
		return nil
	})
}

// showAttributeDiff prints the attributes that differ between the requested
// spec and the existing site.
func showAttributeDiff(provider ui.Provider, spec sites.Spec, existing *netbox.Site) {
	if existing == nil {
		return
	}
	if existing.Status != spec.Status {
		provider.ShowKeyValue("status", fmt.Sprintf("requested %q, existing %q", spec.Status, existing.Status))
	}
	if !existing.Tags.Equal(netbox.TagList(spec.Tags)) {
		provider.ShowKeyValue("tags", fmt.Sprintf("requested [%s], existing [%s]",
			strings.Join(spec.Tags, ", "), strings.Join(existing.Tags, ", ")))
	}
}
