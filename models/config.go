package models

import (
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public location API the selector talks to.
const DefaultBaseURL = "https://crio-location-selector.onrender.com"

// Config is decoded from the keys named in the mapstructure tags. AltScreen
// is stored inverted as no_alt_screen and ConfigFile is filled in by the
// loader.
type Config struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	LogFile    string        `mapstructure:"log_file"`
	LogLevel   string        `mapstructure:"log_level"`
	AltScreen  bool          `mapstructure:"-"`
	NoColor    bool          `mapstructure:"no_color"`
	ConfigFile string        `mapstructure:"-"`
}

// A zero Timeout means requests are never cut short.
var DefaultConfig = Config{
	BaseURL:   DefaultBaseURL,
	Timeout:   0,
	LogFile:   "location-selector.log",
	LogLevel:  "info",
	AltScreen: true,
	NoColor:   false,
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func (c *Config) Validate() error {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = DefaultConfig.BaseURL
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return &ConfigError{Field: "base_url", Message: "must be an absolute http(s) URL"}
	}

	if c.Timeout < 0 {
		return &ConfigError{Field: "timeout", Message: "must not be negative"}
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultConfig.LogLevel
	}
	if !validLogLevels[c.LogLevel] {
		return &ConfigError{Field: "log_level", Message: "must be one of debug, info, warn, error"}
	}

	return nil
}

type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
