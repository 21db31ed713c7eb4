// Package config loads and saves trucost configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all trucost configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Gemini     GeminiConfig     `toml:"gemini"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DatabasePath string `toml:"database_path,omitempty"`
	Quiet        bool   `toml:"quiet"`
}

// GeminiConfig holds Gemini API settings for price lookup, store
// finding, and video generation.
type GeminiConfig struct {
	APIKey     string `toml:"api_key,omitempty"`
	BaseURL    string `toml:"base_url,omitempty"`
	TextModel  string `toml:"text_model,omitempty"`
	VideoModel string `toml:"video_model,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Gemini: GeminiConfig{
			TextModel:  "gemini-3-flash-preview",
			VideoModel: "veo-3.1-fast-generate-preview",
		},
		Appearance: AppearanceConfig{
			Theme: "trucost-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "trucost")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "trucost")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultDatabasePath returns the XDG data location of the database.
func DefaultDatabasePath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "trucost", "trucost.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "trucost", "trucost.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Gemini.TextModel == "" {
		cfg.Gemini.TextModel = DefaultConfig().Gemini.TextModel
	}
	if cfg.Gemini.VideoModel == "" {
		cfg.Gemini.VideoModel = DefaultConfig().Gemini.VideoModel
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetGeminiKey returns the API key from env var or config, in that order.
func GetGeminiKey(cfg Config) string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return cfg.Gemini.APIKey
}

// DatabasePath resolves the database location: config override first,
// then the XDG default.
func DatabasePath(cfg Config) string {
	if cfg.General.DatabasePath != "" {
		return cfg.General.DatabasePath
	}
	return DefaultDatabasePath()
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
