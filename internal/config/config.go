// Package config loads user settings from an optional YAML file and
// WEEZY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/dori/weezy/internal/ui/theme"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "WEEZY"

// Views are the screens the TUI can start on, in tab order
var Views = []string{"dashboard", "workspace", "chat", "tasks", "storage", "settings"}

// Config holds the resolved settings
type Config struct {
	WorkspaceName string        `json:"workspace_name" yaml:"workspace_name"`
	Theme         string        `json:"theme" yaml:"theme"`
	StartView     string        `json:"start_view" yaml:"start_view"`
	TypingDelay   time.Duration `json:"typing_delay" yaml:"typing_delay"`
	TypingJitter  time.Duration `json:"typing_jitter" yaml:"typing_jitter"`
	Notifications bool          `json:"notifications" yaml:"notifications"`
	Debug         bool          `json:"debug" yaml:"debug"`
	LogFile       string        `json:"log_file" yaml:"log_file"`
	RuntimeDir    string        `json:"runtime_dir" yaml:"runtime_dir"`

	// File is the config file that was read, empty when none was found
	File string `json:"-" yaml:"-"`
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/weezy or its platform equivalent
func DefaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".weezy"
	}
	return filepath.Join(dir, "weezy")
}

// DefaultRuntimeDir returns the directory holding the lock and log files
func DefaultRuntimeDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "weezy")
	}
	return filepath.Join(dir, "weezy")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("workspace_name", "Acme Corporation")
	v.SetDefault("theme", "nord")
	v.SetDefault("start_view", "dashboard")
	v.SetDefault("typing_delay", 1500*time.Millisecond)
	v.SetDefault("typing_jitter", 500*time.Millisecond)
	v.SetDefault("notifications", false)
	v.SetDefault("debug", false)
	v.SetDefault("log_file", "")
	v.SetDefault("runtime_dir", DefaultRuntimeDir())
}

// Load reads settings. An explicit path must exist; without one the
// default config directory is searched and a missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(DefaultConfigDir())
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			if errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("config file %s does not exist", path)
			}
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{
		WorkspaceName: v.GetString("workspace_name"),
		Theme:         strings.ToLower(v.GetString("theme")),
		StartView:     strings.ToLower(v.GetString("start_view")),
		TypingDelay:   v.GetDuration("typing_delay"),
		TypingJitter:  v.GetDuration("typing_jitter"),
		Notifications: v.GetBool("notifications"),
		Debug:         v.GetBool("debug"),
		LogFile:       v.GetString("log_file"),
		RuntimeDir:    v.GetString("runtime_dir"),
		File:          v.ConfigFileUsed(),
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.RuntimeDir, "weezy.log")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown views and themes and negative delays
func (c Config) Validate() error {
	if !slices.Contains(Views, c.StartView) {
		return fmt.Errorf("invalid start_view %q (want one of %s)", c.StartView, strings.Join(Views, ", "))
	}
	if _, ok := theme.ByName(c.Theme); !ok {
		return fmt.Errorf("invalid theme %q (want one of %s)", c.Theme, strings.Join(theme.Names(), ", "))
	}
	if c.TypingDelay < 0 {
		return fmt.Errorf("typing_delay must not be negative, got %s", c.TypingDelay)
	}
	if c.TypingJitter < 0 {
		return fmt.Errorf("typing_jitter must not be negative, got %s", c.TypingJitter)
	}
	if c.RuntimeDir == "" {
		return errors.New("runtime_dir must be set")
	}
	return nil
}
