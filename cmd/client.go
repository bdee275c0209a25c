package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/filingdesk/internal/config"
	"github.com/filingdesk/internal/registry"
)

// buildClient loads and validates the configuration, then returns a registry
// client for it. Shared by every command that talks to the API.
func buildClient(c *cli.Context) (*registry.HTTPClient, *config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	timeout := time.Duration(cfg.API.TimeoutSeconds) * time.Second
	client := registry.NewHTTPClient(cfg.API.URL, cfg.API.Token, timeout)
	return client, cfg, nil
}
