// Package history remembers which documents were opened and keeps the
// metric snapshots taken along the way, backed by a SQLite database
// under the XDG data directory.
package history

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/awrigley/markwright/internal/document"
)

// Store is the interface for document history persistence.
type Store interface {
	// Document tracking
	Touch(ctx context.Context, path string) error
	Recent(ctx context.Context, limit int) ([]Document, error)
	Forget(ctx context.Context, path string) error

	// Metric snapshots
	RecordSnapshot(ctx context.Context, path string, m document.Metrics) error
	Snapshots(ctx context.Context, path string, limit int) ([]Snapshot, error)

	// Lifecycle
	Close() error
}

// Config holds history storage configuration.
type Config struct {
	Enabled      bool   `mapstructure:"enabled"`       // Master switch
	MaxEntries   int    `mapstructure:"max_entries"`   // Keep at most N recent documents (0=unlimited)
	MaxSnapshots int    `mapstructure:"max_snapshots"` // Keep at most N snapshots per document (0=unlimited)
	Path         string `mapstructure:"path"`          // Database path override (empty=XDG default)
}

// DefaultConfig returns the default history configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MaxEntries:   10,
		MaxSnapshots: 100,
	}
}

// GetDataDir returns the XDG data directory for markwright.
// Uses $XDG_DATA_HOME if set, otherwise ~/.local/share
func GetDataDir() (string, error) {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "markwright"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "markwright"), nil
}

// GetDBPath returns the path to the history database.
func GetDBPath() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "history.db"), nil
}

// NewStore creates a new Store based on the configuration.
// If history is disabled, returns a no-op store.
func NewStore(cfg Config) (Store, error) {
	if !cfg.Enabled {
		return &NoopStore{}, nil
	}
	return NewSQLiteStore(cfg)
}
