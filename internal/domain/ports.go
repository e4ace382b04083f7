package domain

import "time"

// TaskStore persists the task collection to a key-value storage medium.
type TaskStore interface {
	// Load reads the persisted collection. It is fail-open: a missing
	// key, corrupt payload, or partially invalid elements yield the
	// valid subset (possibly nothing), never an error.
	Load() []*Task

	// Save serializes the full collection and replaces the prior state.
	// Persistence is best-effort; callers treat failures as advisory.
	Save(tasks []*Task) error
}

// IDGenerator produces fresh opaque task identifiers.
type IDGenerator interface {
	// NewID returns a unique task ID.
	NewID() string
}

// Logger writes application log entries.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the effective configuration (defaults overlaid with
	// the user config file). A missing file yields defaults.
	Load() (*Config, error)
}

// Config represents the application configuration.
type Config struct {
	Store StoreConfig `toml:"store"` // [store] settings
	Log   LogConfig   `toml:"log"`   // [log] settings
}

// StoreConfig holds persistence settings from the [store] section.
type StoreConfig struct {
	Path string `toml:"path"` // Override for the tasks file path
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
	}
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
