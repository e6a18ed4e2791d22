package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/layouteng/gridsnap/pkg/errors"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Match.MaxMatchDistance != 16 {
		t.Errorf("MaxMatchDistance = %v, want default 16", cfg.Match.MaxMatchDistance)
	}
	if cfg.Match.GridMode {
		t.Error("GridMode should default to false")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridsnap.toml")
	content := `
[match]
max_match_distance = 10.0
margin = 4.0
grid_mode = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Match.MaxMatchDistance != 10 {
		t.Errorf("MaxMatchDistance = %v, want 10", cfg.Match.MaxMatchDistance)
	}
	if cfg.Match.MarginPx != 4 {
		t.Errorf("MarginPx = %v, want 4", cfg.Match.MarginPx)
	}
	if !cfg.Match.GridMode {
		t.Error("GridMode should be true")
	}
	// Unspecified keys keep their defaults.
	if cfg.Match.ShortGapDp != 8 {
		t.Errorf("ShortGapDp = %v, want default 8", cfg.Match.ShortGapDp)
	}
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadConfig() error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridsnap.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("LoadConfig() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}
