package version

import (
	"github.com/pterm/pterm"
	"github.com/vovashkil/netbox-api-scripts/internal/build"
)

// Cmd prints the version information.
// The version information is read directly from the build package.
type Cmd struct{}

func (c *Cmd) Run() error {
	pterm.Printfln("version: %s", build.Version)
	if build.Revision != "" {
		pterm.Printfln("revision: %s", build.Revision)
	}
	if build.ModificationTime != "" {
		pterm.Printfln("time: %s", build.ModificationTime)
	}
	if build.Modified {
		pterm.Printfln("modified: %t", build.Modified)
	}
	return nil
}
