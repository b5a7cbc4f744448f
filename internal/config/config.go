package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Nomadcxx/jellyrename/internal/paths"
)

type Config struct {
	Options OptionsConfig `mapstructure:"options"`
	Watch   WatchConfig   `mapstructure:"watch"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OptionsConfig contains general options
type OptionsConfig struct {
	DryRun    bool `mapstructure:"dry_run"`
	Recursive bool `mapstructure:"recursive"`
	AssumeYes bool `mapstructure:"assume_yes"`
}

// WatchConfig contains settings for watch mode
type WatchConfig struct {
	Directories   []string `mapstructure:"directories"`
	SettleSeconds int      `mapstructure:"settle_seconds"`
	AutoApply     bool     `mapstructure:"auto_apply"`
}

type UIConfig struct {
	NoColor bool `mapstructure:"no_color"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Options: OptionsConfig{
			DryRun:    false,
			Recursive: false,
			AssumeYes: false,
		},
		Watch: WatchConfig{
			Directories:   []string{},
			SettleSeconds: 2,
			AutoApply:     false,
		},
		UI: UIConfig{
			NoColor: false,
		},
		Logging: LoggingConfig{
			Level:      "info",
			File:       "",
			MaxSizeMB:  10,
			MaxBackups: 5,
		},
	}
}

// Load loads configuration from the default location or returns defaults
func Load() (*Config, error) {
	configPath, err := paths.ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("unable to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom loads configuration from an explicit path. A missing file is not
// an error: defaults are returned.
func LoadFrom(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	// Read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	// Unmarshal over defaults
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default location
func (c *Config) Save() error {
	configFile, err := ConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("unable to create config dir: %w", err)
	}

	return os.WriteFile(configFile, []byte(c.ToTOML()), 0644)
}

func ConfigPath() (string, error) {
	return paths.ConfigPath()
}

func ConfigExists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

func (c *Config) ToTOML() string {
	return fmt.Sprintf(`# jellyrename Configuration
# Generated by: jellyrename config init

# ============================================================================
# GENERAL OPTIONS
# ============================================================================
[options]
# Preview mode - plan and print renames without touching files
dry_run = %v

# Scan subdirectories for episodes as well
recursive = %v

# Skip the confirmation gate and rename immediately
assume_yes = %v

# ============================================================================
# WATCH MODE
# Used by: jellyrename watch
# ============================================================================
[watch]
# Directories to watch when none is given on the command line
directories = %s

# Seconds a directory must stay quiet before its batch is processed
settle_seconds = %d

# Apply renames automatically when every file agrees on the show name.
# Without this, watch mode only reports what it would do.
auto_apply = %v

# ============================================================================
# OUTPUT
# ============================================================================
[ui]
# Disable colored output
no_color = %v

# ============================================================================
# LOGGING
# ============================================================================
[logging]
level = "%s"
file = "%s"
max_size_mb = %d
max_backups = %d
`,
		c.Options.DryRun,
		c.Options.Recursive,
		c.Options.AssumeYes,
		formatStringSlice(c.Watch.Directories),
		c.Watch.SettleSeconds,
		c.Watch.AutoApply,
		c.UI.NoColor,
		c.Logging.Level,
		c.Logging.File,
		c.Logging.MaxSizeMB,
		c.Logging.MaxBackups,
	)
}

func formatStringSlice(s []string) string {
	if len(s) == 0 {
		return "[]"
	}
	quoted := make([]string, len(s))
	for i, v := range s {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
