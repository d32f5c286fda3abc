package domain

import "path/filepath"

// Config represents the application configuration.
type Config struct {
	Log   LogConfig   `toml:"log"`
	Tasks TasksConfig `toml:"tasks"`
	List  ListConfig  `toml:"list"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// TasksConfig holds task authoring settings from [tasks] section.
type TasksConfig struct {
	RequireDescription bool `toml:"require_description"` // Legacy rule: reject tasks without description
}

// ListConfig holds settings of `tasks list` from [list] section.
type ListConfig struct {
	Limit int `toml:"limit"` // Default number of tasks to show (0 = all)
}

// ValidationPolicy returns the task validation policy configured in [tasks].
func (c *Config) ValidationPolicy() ValidationPolicy {
	return ValidationPolicy{RequireDescription: c.Tasks.RequireDescription}
}

// ConfigInfo describes a config file location.
type ConfigInfo struct {
	Path   string // Absolute path, "" if no config home could be determined
	Exists bool   // Whether the file exists
}

// Config file location.
const (
	AppDirName     = "lean"        // Directory below XDG_CONFIG_HOME
	ConfigFileName = "config.toml" // Config file name
)

// DefaultLogLevel keeps a normal CLI run quiet.
const DefaultLogLevel = "warn"

// GlobalConfigPath returns the global config path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigPath(configHome string) string {
	return filepath.Join(configHome, AppDirName, ConfigFileName)
}

// NewDefaultConfig returns a new Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: DefaultLogLevel},
	}
}
