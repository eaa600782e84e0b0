package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"location-selector/models"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. LOCSEL_BASE_URL.
const EnvPrefix = "LOCSEL"

// HomeDir is the directory under $HOME searched for the config file and
// holding the default log file.
const HomeDir = ".location-selector"

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"config":        "config_file",
	"base-url":      "base_url",
	"timeout":       "timeout",
	"log-file":      "log_file",
	"log-level":     "log_level",
	"no-alt-screen": "no_alt_screen",
	"no-color":      "no_color",
}

// RegisterFlags adds the configuration flags to a flag set. Defaults are left
// to Load so that config files and env vars are not shadowed by flag defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (default: location-selector.yaml in . or $HOME/.location-selector)")
	fs.String("base-url", "", "base URL of the location API")
	fs.Duration("timeout", 0, "per-request timeout, 0 disables it")
	fs.String("log-file", "", "file to write logs to, \"-\" disables logging (default: $HOME/.location-selector/location-selector.log)")
	fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.Bool("no-alt-screen", false, "render inline instead of using the terminal's alternate screen")
	fs.Bool("no-color", false, "disable colored output for list commands")
}

// Load resolves configuration from defaults, an optional config file,
// LOCSEL_* environment variables and the flags that were set, in increasing
// precedence. fs may be nil.
func Load(fs *pflag.FlagSet) (*models.Config, error) {
	v := viper.New()

	v.SetDefault("base_url", models.DefaultConfig.BaseURL)
	v.SetDefault("timeout", models.DefaultConfig.Timeout)
	v.SetDefault("log_file", defaultLogFile())
	v.SetDefault("log_level", models.DefaultConfig.LogLevel)
	v.SetDefault("no_alt_screen", !models.DefaultConfig.AltScreen)
	v.SetDefault("no_color", models.DefaultConfig.NoColor)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	configFile := v.GetString("config_file")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("location-selector")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join("$HOME", HomeDir))
	}

	if err := v.ReadInConfig(); err != nil {
		// Defaults cover a missing file unless the user asked for one.
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &models.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.AltScreen = !v.GetBool("no_alt_screen")
	cfg.ConfigFile = v.ConfigFileUsed()

	if cfg.LogFile == "-" {
		cfg.LogFile = ""
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultLogFile keeps logs next to the user config. Without a resolvable
// home directory it falls back to the working directory.
func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return models.DefaultConfig.LogFile
	}
	return filepath.Join(home, HomeDir, models.DefaultConfig.LogFile)
}
