package cmd

import (
	"testing"

	"github.com/awrigley/markwright/internal/config"
)

func TestHistoryStoreConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.History.Enabled = true
	cfg.History.MaxEntries = 10
	cfg.History.MaxSnapshots = 100
	cfg.History.Path = "/tmp/custom.db"

	got := historyStoreConfig(cfg)
	if !got.Enabled {
		t.Error("store should be enabled")
	}
	if got.MaxEntries != 10 || got.MaxSnapshots != 100 {
		t.Errorf("limits not carried: %+v", got)
	}
	if got.Path != "/tmp/custom.db" {
		t.Errorf("path not carried: %q", got.Path)
	}
}

func TestHistoryStoreConfigNoHistoryFlag(t *testing.T) {
	oldNoHistory := noHistory
	noHistory = true
	t.Cleanup(func() { noHistory = oldNoHistory })

	cfg := &config.Config{}
	cfg.History.Enabled = true

	if got := historyStoreConfig(cfg); got.Enabled {
		t.Error("--no-history should disable the store")
	}
}
