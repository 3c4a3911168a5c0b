package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/vovashkil/netbox-api-scripts/internal/nbctl"
	"github.com/vovashkil/netbox-api-scripts/internal/validate"
)

// Config holds environment-based configuration for reaching NetBox.
// Nothing outside this package reads the environment.
type Config struct {
	// URL is the base URL of the NetBox deployment, without the /api suffix.
	URL string `envconfig:"NETBOX_URL" required:"true"`
	// Token is the NetBox API token, sent on every request.
	Token string `envconfig:"NETBOX_API_TOKEN" required:"true"`
	// Timeout bounds every request against NetBox.
	Timeout time.Duration `envconfig:"NETBOX_TIMEOUT" default:"10s"`
}

// Load reads the configuration from environment variables.
// Any missing or malformed value is a configuration error, reported before
// any network activity happens.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", nbctl.ErrConfiguration, err)
	}

	// envconfig only rejects unset required variables; set-but-empty passes.
	if !validate.IsURL(cfg.URL) {
		return nil, fmt.Errorf("%w: NETBOX_URL %q is not an http(s) URL", nbctl.ErrConfiguration, cfg.URL)
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("%w: NETBOX_API_TOKEN must not be empty", nbctl.ErrConfiguration)
	}

	return &cfg, nil
}
