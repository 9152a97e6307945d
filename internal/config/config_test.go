package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.Database.Name != "HexaDB_Instance" || cfg.Database.File != "hexadb.data" || !cfg.Database.AutoLoad {
		t.Fatalf("unexpected defaults: %+v", cfg.Database)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
database:
  name: shop
  auto_load: false
  auto_save: true
log:
  level: debug
  format: json
output:
  format: json
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Database.Name != "shop" || cfg.Database.AutoLoad || !cfg.Database.AutoSave {
		t.Fatalf("unexpected database section: %+v", cfg.Database)
	}
	// Unset keys keep their defaults.
	if cfg.Database.File != "hexadb.data" {
		t.Fatalf("expected default file, got %q", cfg.Database.File)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" || cfg.Output.Format != FormatJSON {
		t.Fatalf("unexpected log/output: %+v %+v", cfg.Log, cfg.Output)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":      "database: [",
		"empty name":    "database:\n  name: \"\"\n",
		"empty file":    "database:\n  file: \" \"\n",
		"padded name":   "database:\n  name: \" shop \"\n",
		"multiline":     "database:\n  name: \"a\\nb\"\n",
		"bad level":     "log:\n  level: loud\n",
		"bad logformat": "log:\n  format: xml\n",
		"bad output":    "output:\n  format: csv\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(data)); err == nil {
				t.Fatalf("expected error for %q", data)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexadb.yaml")
	if err := os.WriteFile(path, []byte("database:\n  file: data/db.sz\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !strings.HasSuffix(cfg.Database.File, ".sz") {
		t.Fatalf("unexpected file %q", cfg.Database.File)
	}
}
