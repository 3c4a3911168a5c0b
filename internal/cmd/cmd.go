package cmd

import (
	"os"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/cli/browser"
	"github.com/pterm/pterm"
	"github.com/vovashkil/netbox-api-scripts/internal/cmd/version"
	"github.com/vovashkil/netbox-api-scripts/internal/config"
	"github.com/vovashkil/netbox-api-scripts/internal/sites"
	"github.com/vovashkil/netbox-api-scripts/internal/telemetry"
	"github.com/vovashkil/netbox-api-scripts/internal/trace"
	"github.com/vovashkil/netbox-api-scripts/internal/ui"
)

type verbose bool

func (v verbose) BeforeApply() error {
	pterm.EnableDebugMessages()
	return nil
}

// Cmd is the root nbctl command.
type Cmd struct {
	List    ListCmd     `cmd:"" help:"List NetBox sites."`
	Create  CreateCmd   `cmd:"" help:"Create a NetBox site if it does not already exist."`
	Delete  DeleteCmd   `cmd:"" help:"Delete a NetBox site if it exists."`
	Open    OpenCmd     `cmd:"" help:"Open the NetBox web UI in a browser."`
	Version version.Cmd `cmd:"" help:"Display version information."`
	Verbose verbose     `short:"v" help:"Enable verbose output."`
}

// loadConfig caches the environment configuration so commands that need both
// the raw configuration and the site manager only read it once.
var loadConfig = sync.OnceValues(config.Load)

// newManager builds the site manager lazily, so commands that never touch the
// API (version) run without any environment configuration.
func newManager() (*sites.Manager, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	trace.Redact(cfg.Token)
	return sites.NewManager(cfg)
}

func (c *Cmd) BeforeApply(kCtx *kong.Context) error {
	if _, envVarDNT := os.LookupEnv("DO_NOT_TRACK"); envVarDNT {
		pterm.Info.Println("Telemetry collection disabled (DO_NOT_TRACK)")
	}

	kCtx.BindTo(telemetry.Get(), (*telemetry.Client)(nil))
	kCtx.BindTo(ui.New(), (*ui.Provider)(nil))
	kCtx.Bind(BrowserLauncher(browser.OpenURL))
	if err := kCtx.BindToProvider(loadConfig); err != nil {
		return err
	}
	return kCtx.BindToProvider(newManager)
}
