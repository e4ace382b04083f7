package domain

import "path/filepath"

// ConfigFileName is the name of the taskpad configuration file.
const ConfigFileName = "config.toml"

// StoreFileName is the fixed key the task collection is stored under.
const StoreFileName = "tasks.json"

// DataDir returns the taskpad data directory under dataHome
// (e.g. ~/.local/share/taskpad).
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, "taskpad")
}

// ConfigDir returns the taskpad config directory under configHome
// (e.g. ~/.config/taskpad).
func ConfigDir(configHome string) string {
	return filepath.Join(configHome, "taskpad")
}

// StorePath returns the path to the tasks file.
func StorePath(dataDir string) string {
	return filepath.Join(dataDir, StoreFileName)
}

// LogPath returns the path to the application log file.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", "taskpad.log")
}
