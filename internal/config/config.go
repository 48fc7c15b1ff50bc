package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Config is the planner's application configuration.
type Config struct {
	// DataDir is where the file store keeps its JSON files.
	DataDir string `koanf:"data_dir" yaml:"data_dir"`

	// Store selects the persistence backend: "file", "sqlite", or "memory"
	// (memory keeps nothing across runs).
	Store string `koanf:"store" yaml:"store"`

	// SQLitePath is the database file used when Store is "sqlite".
	SQLitePath string `koanf:"sqlite_path" yaml:"sqlite_path"`

	// LogLevel is the minimum level emitted: debug, info, warn, or error.
	LogLevel string `koanf:"log_level" yaml:"log_level"`
}

// DefaultPath is the config file consulted when no --config flag is given.
const DefaultPath = "~/.config/planner/config.yaml"

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"data_dir":    "~/.local/share/planner",
		"store":       "file",
		"sqlite_path": "~/.local/share/planner/planner.db",
		"log_level":   "info",
	}
}

// Load builds the configuration from three layers: built-in defaults, the
// YAML config file at configPath (skipped if absent), and PLANNER_*
// environment variables (e.g. PLANNER_DATA_DIR, PLANNER_STORE).
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if configPath != "" {
		configPath = ExpandPath(configPath)
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("loading config file: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider("PLANNER_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PLANNER_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	switch cfg.Store {
	case "file", "sqlite", "memory":
	default:
		return nil, fmt.Errorf("invalid store backend %q (must be file, sqlite, or memory)", cfg.Store)
	}

	return &cfg, nil
}

// WriteDefault writes a config file populated with the defaults, creating
// parent directories as needed. It refuses to overwrite an existing file.
// The file is written 0600; it is per-user configuration.
func WriteDefault(configPath string) error {
	configPath = ExpandPath(configPath)

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var cfg Config
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return fmt.Errorf("loading defaults: %w", err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return fmt.Errorf("unmarshaling defaults: %w", err)
	}

	data, err := yamlv3.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ExpandPath expands a leading "~/" to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
