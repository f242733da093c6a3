package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Alias is a user-defined single-step alias from an [alias.NAME] section.
type Alias struct {
	Args    []string `toml:"args"`    // git arguments, e.g. ["fetch", "--all"]
	Summary string   `toml:"summary"` // one-line description for the help text
}

// Config holds the gt configuration.
type Config struct {
	GitBin            string           `toml:"git_bin"`            // git executable, default "git"
	InfoLogLines      int              `toml:"info_log_lines"`     // log lines shown by the i command
	CompositeContinue bool             `toml:"composite_continue"` // keep running composite steps after a failure
	Aliases           map[string]Alias `toml:"alias"`              // user-defined aliases
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		GitBin:       "git",
		InfoLogLines: 3,
	}
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gt", "config.toml"), nil
}

// Load reads config from ~/.config/gt/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns Default() and an error if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from an explicit path. Split out of Load for tests.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.GitBin == "" {
		cfg.GitBin = "git"
	}
	if cfg.InfoLogLines < 1 {
		return Default(), fmt.Errorf("invalid info_log_lines %d: must be at least 1", cfg.InfoLogLines)
	}
	for name, a := range cfg.Aliases {
		if name == "" {
			return Default(), fmt.Errorf("alias with empty name")
		}
		if len(a.Args) == 0 {
			return Default(), fmt.Errorf("alias %q has no args", name)
		}
	}

	return cfg, nil
}
