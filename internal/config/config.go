// Package config provides configuration management for stopcheck using Viper.
package config

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/stopcheck/internal/errors"
	"github.com/thoreinstein/stopcheck/internal/rules"
	"github.com/thoreinstein/stopcheck/internal/stop"
)

// AppName is the application name used for config file naming.
const AppName = "stopcheck"

// Config represents the top-level configuration structure.
type Config struct {
	// RequiredFields overrides the set of fields every record must carry.
	RequiredFields []string `mapstructure:"required_fields" yaml:"required_fields"`

	// MaxLinkLength overrides the suspicious-link length cutoff.
	MaxLinkLength int `mapstructure:"max_link_length" yaml:"max_link_length"`

	// Placeholder overrides the stand-in substring flagged in links.
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`

	// RulesFile points at a TOML rules file applied when --rules is not given.
	RulesFile string `mapstructure:"rules_file" yaml:"rules_file"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// configHome is the directory searched after the current directory,
// typically paths.ConfigHome().
func Init(configHome string) {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(filepath.Join(configHome, AppName))

	// Environment variable support
	viper.SetEnvPrefix("STOPCHECK")
	viper.AutomaticEnv()

	// Defaults reproduce the historical validator constants.
	viper.SetDefault("required_fields", stop.RequiredFields)
	viper.SetDefault("max_link_length", rules.DefaultMaxLinkLength)
	viper.SetDefault("placeholder", rules.DefaultPlaceholder)
	viper.SetDefault("rules_file", "")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, errors.Newf("config file not found at %s", path)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}

// Rules builds the effective validation rules from the configuration.
func (c *Config) Rules() (*rules.Rules, error) {
	r := &rules.Rules{
		RequiredFields: c.RequiredFields,
		MaxLinkLength:  c.MaxLinkLength,
		Placeholder:    c.Placeholder,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
