// Package config loads Paletta's configuration from a TOML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jmylchreest/paletta/internal/storage"
)

// Environment variables that override file values.
const (
	EnvConfigPath       = "PALETTA_CONFIG"
	EnvStorageBackend   = "PALETTA_STORAGE_BACKEND"
	EnvStoragePath      = "PALETTA_STORAGE_PATH"
	EnvClipboardEnabled = "PALETTA_CLIPBOARD_ENABLED"
	EnvClipboardTimeout = "PALETTA_CLIPBOARD_TIMEOUT"
	EnvPreviewWidth     = "PALETTA_PREVIEW_WIDTH"
)

type Config struct {
	Storage   StorageConfig   `toml:"storage"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Display   DisplayConfig   `toml:"display"`
}

type StorageConfig struct {
	Backend string `toml:"backend"`
	// Path is the store file. Empty selects a file in the data directory
	// named after the backend.
	Path string `toml:"path"`
}

type ClipboardConfig struct {
	Enabled bool          `toml:"enabled"`
	Timeout time.Duration `toml:"timeout"`
}

type DisplayConfig struct {
	Preview      bool `toml:"preview"`
	PreviewWidth int  `toml:"preview_width"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: storage.BackendFile,
		},
		Clipboard: ClipboardConfig{
			Enabled: true,
			Timeout: 3 * time.Second,
		},
		Display: DisplayConfig{
			Preview:      true,
			PreviewWidth: 9,
		},
	}
}

// DefaultPath returns the config file location: $PALETTA_CONFIG if set,
// otherwise config.toml in the user config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "paletta", "config.toml"), nil
}

// DataDir returns the directory history is stored in by default.
func DataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "paletta"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine data directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "paletta"), nil
}

// Load reads the file at path (defaults when it does not exist), applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvStorageBackend); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv(EnvStoragePath); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(EnvClipboardEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %s", EnvClipboardEnabled, v)
		}
		c.Clipboard.Enabled = b
	}
	if v := os.Getenv(EnvClipboardTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %s", EnvClipboardTimeout, v)
		}
		c.Clipboard.Timeout = d
	}
	if v := os.Getenv(EnvPreviewWidth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %s", EnvPreviewWidth, v)
		}
		c.Display.PreviewWidth = n
	}
	return nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	valid := false
	for _, b := range storage.Backends() {
		if c.Storage.Backend == b {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("invalid storage.backend: %s (must be %s)", c.Storage.Backend, strings.Join(storage.Backends(), ", "))
	}
	if c.Clipboard.Timeout <= 0 {
		return fmt.Errorf("invalid clipboard.timeout: %v", c.Clipboard.Timeout)
	}
	if c.Display.PreviewWidth < 7 {
		return fmt.Errorf("invalid display.preview_width: %d (minimum 7)", c.Display.PreviewWidth)
	}
	return nil
}

// StorageOptions resolves the storage backend and path.
func (c *Config) StorageOptions() (storage.Options, error) {
	opts := storage.Options{Backend: c.Storage.Backend, Path: c.Storage.Path}
	if opts.Path != "" || opts.Backend == storage.BackendMemory {
		return opts, nil
	}

	dir, err := DataDir()
	if err != nil {
		return opts, err
	}
	switch opts.Backend {
	case storage.BackendSQLite:
		opts.Path = filepath.Join(dir, "paletta.db")
	default:
		opts.Path = filepath.Join(dir, "palettes.json")
	}
	return opts, nil
}

// WriteDefault writes the default configuration to path, creating its directory.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

const defaultConfigContent = `# Paletta configuration

[storage]
  backend = "file"        # "file", "sqlite" or "memory"
  path = ""               # empty = data directory default

[clipboard]
  enabled = true
  timeout = "3s"

[display]
  preview = true          # colour swatches in terminal output
  preview_width = 9       # characters per swatch
`
