package cmd

import (
	"fmt"
	"log/slog"

	"github.com/gravitrone/tagdeck/cli/internal/api"
	"github.com/gravitrone/tagdeck/cli/internal/config"
)

// LoadClient reads the config and builds an authenticated client from it.
func LoadClient() (*config.Config, *api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("not configured (run 'tagdeck setup'): %w", err)
	}
	return cfg, NewClient(cfg), nil
}

// NewClient builds a client for cfg that logs through the default logger.
func NewClient(cfg *config.Config) *api.Client {
	client := api.NewClient(cfg.BaseURL).WithLogger(slog.Default())
	if cfg.Username != "" {
		client.SetCredentials(cfg.Username, cfg.Password)
	}
	return client
}

// FlushMetrics writes the client's request metrics when cfg names a file.
func FlushMetrics(cfg *config.Config, client *api.Client) {
	if cfg == nil || cfg.MetricsFile == "" || client == nil {
		return
	}
	if err := client.Metrics().WriteTextfile(cfg.MetricsFile); err != nil {
		slog.Warn("write metrics", "path", cfg.MetricsFile, "err", err)
	}
}
