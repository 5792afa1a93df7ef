package cli

import (
	"fmt"

	"github.com/glorpus-work/binfetch/pkg/archive"
	"github.com/glorpus-work/binfetch/pkg/auth"
	"github.com/glorpus-work/binfetch/pkg/config"
	"github.com/glorpus-work/binfetch/pkg/download"
	"github.com/glorpus-work/binfetch/pkg/fetcher"
	"github.com/glorpus-work/binfetch/pkg/logger"
	"github.com/glorpus-work/binfetch/pkg/resolve"
)

// UserAgent identifies binfetch in outbound HTTP requests.
const UserAgent = "binfetch/" + Version

// These variables will be set by the main package.
var (
	ConfigPath *string
	Verbose    *bool
	NoColor    *bool
)

// loadConfig loads the configuration from the --config flag and applies the
// global CLI flags on top.
func loadConfig() (*config.Config, error) {
	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}
	if configPath == "" {
		return nil, fmt.Errorf("a config file is required (--config)")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}

	noColor := NoColor != nil && *NoColor
	logger.InitLogger(cfg.Settings.LogLevel, noColor)

	return cfg, nil
}

// buildFetcher wires the fetcher and its collaborators from the configuration.
func buildFetcher(cfg *config.Config) *fetcher.Fetcher {
	creds := cfg.Credential.ToProvider()

	return &fetcher.Fetcher{
		Credentials: creds,
		Resolver:    resolve.NewClient(cfg.Endpoint, auth.ProviderAuth{Provider: creds}, cfg.Settings.HTTPTimeout, UserAgent),
		DL:          download.NewManager(cfg.Settings.DownloadTimeout, UserAgent),
		Extractor:   archive.NewManager(),
		Index:       newRefresher(cfg.Settings.RefreshCommand),
		Progress:    newLogReporter(),
		Hooks: fetcher.Hooks{OnEvent: func(e fetcher.Event) {
			logger.Debug("fetch phase", logger.Fields{
				"category": "cli",
				"phase":    e.Phase,
				"target":   e.Target,
				"msg":      e.Msg,
			})
		}},
	}
}
