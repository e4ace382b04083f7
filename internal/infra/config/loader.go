// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/knakagawa/taskpad/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	confDir string // Path to the taskpad config directory
}

// NewLoader creates a new Loader for the given config directory.
func NewLoader(confDir string) *Loader {
	return &Loader{confDir: confDir}
}

// DefaultConfigDir returns the default config directory
// (XDG_CONFIG_HOME or ~/.config, plus the taskpad subdirectory).
func DefaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.ConfigDir(configHome)
}

// Load returns the effective configuration: built-in defaults overlaid
// with the user config file. A missing file yields defaults with a nil
// error; an unreadable or invalid file yields defaults alongside the
// error so callers can log it and carry on.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()
	if l.confDir == "" {
		return base, nil
	}

	path := filepath.Join(l.confDir, domain.ConfigFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return base, fmt.Errorf("read config file: %w", err)
	}

	var file domain.Config
	if err := toml.Unmarshal(content, &file); err != nil {
		return base, fmt.Errorf("parse config file: %w", err)
	}

	return merge(base, &file), nil
}

// merge overlays non-empty file values onto the base config.
func merge(base, file *domain.Config) *domain.Config {
	out := *base
	if file.Store.Path != "" {
		out.Store.Path = file.Store.Path
	}
	if file.Log.Level != "" {
		out.Log.Level = file.Log.Level
	}
	return &out
}
