package config

import (
	"os"
	"path/filepath"
	"testing"
)

// pointConfigAt redirects the config dir to a temp location for the test.
func pointConfigAt(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	pointConfigAt(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Gemini.TextModel != "gemini-3-flash-preview" {
		t.Errorf("TextModel = %q, want default", cfg.Gemini.TextModel)
	}
	if cfg.Gemini.VideoModel != "veo-3.1-fast-generate-preview" {
		t.Errorf("VideoModel = %q, want default", cfg.Gemini.VideoModel)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	pointConfigAt(t)

	cfg := DefaultConfig()
	cfg.General.DatabasePath = "/tmp/custom.db"
	cfg.Gemini.APIKey = "test-key"
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.General.DatabasePath != "/tmp/custom.db" {
		t.Errorf("DatabasePath = %q, want /tmp/custom.db", got.General.DatabasePath)
	}
	if got.Gemini.APIKey != "test-key" {
		t.Errorf("APIKey = %q, want test-key", got.Gemini.APIKey)
	}
	if got.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want terminal", got.Appearance.Theme)
	}
}

func TestLoad_FillsMissingModels(t *testing.T) {
	dir := pointConfigAt(t)

	path := filepath.Join(dir, "trucost")
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(path, "config.toml"), []byte("[gemini]\napi_key = \"k\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Gemini.TextModel == "" || cfg.Gemini.VideoModel == "" {
		t.Errorf("models not backfilled: %+v", cfg.Gemini)
	}
}

func TestGetGeminiKey_EnvWins(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := Config{Gemini: GeminiConfig{APIKey: "file-key"}}
	if got := GetGeminiKey(cfg); got != "env-key" {
		t.Errorf("GetGeminiKey = %q, want env-key", got)
	}

	t.Setenv("GEMINI_API_KEY", "")
	if got := GetGeminiKey(cfg); got != "file-key" {
		t.Errorf("GetGeminiKey = %q, want file-key", got)
	}
}
