package cmd

import (
	"fmt"
	"os"

	"github.com/awrigley/markwright/internal/config"
	"github.com/awrigley/markwright/internal/history"
	"github.com/awrigley/markwright/internal/theme"
)

// loadConfig reads the config file, applies the global flag
// overrides, and activates the configured theme.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyOverrides(themeFlag)
	theme.Init(cfg.Theme)
	return cfg, nil
}

// historyStoreConfig maps the history section of the config file onto
// the store configuration. The --no-history flag wins over the file.
func historyStoreConfig(cfg *config.Config) history.Config {
	return history.Config{
		Enabled:      cfg.History.Enabled && !noHistory,
		MaxEntries:   cfg.History.MaxEntries,
		MaxSnapshots: cfg.History.MaxSnapshots,
		Path:         cfg.History.Path,
	}
}

// openHistory opens the document history store. On failure the store
// degrades to a no-op so the primary command still runs.
func openHistory(cfg *config.Config) history.Store {
	store, err := history.NewStore(historyStoreConfig(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: document history unavailable: %v\n", err)
		return &history.NoopStore{}
	}
	return store
}
