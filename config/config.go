// Package config loads the library's settings: logging level, render depth
// limit and the failure journal location. Sources are, in increasing
// precedence: defaults, a TOML config file, environment variables and an
// optional caller-provided flag set.
package config

import (
	"os"

	"github.com/spf13/viper"
)

const (
	DefaultLogLevel    = "info"
	DefaultRenderDepth = 0 // 0 renders all causes
	DefaultJournalDB   = "/var/lib/errkit/journal.db"

	configName = "errkit"
	configType = "toml"
	envPrefix  = "ERRKIT"
	// configFileEnv overrides config file discovery with an explicit path.
	configFileEnv = "ERRKIT_CONFIG"
)

type Config struct {
	LogLevel    string `mapstructure:"log_level"`
	RenderDepth int    `mapstructure:"render_depth"`
	Journal     bool   `mapstructure:"journal"`
	JournalDB   string `mapstructure:"journal_db"`
}

func Load(opts ...Option) (*Config, error) {
	o := options{envPrefix: envPrefix}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("render_depth", DefaultRenderDepth)
	v.SetDefault("journal", false)
	v.SetDefault("journal_db", DefaultJournalDB)

	v.SetEnvPrefix(o.envPrefix)
	v.AutomaticEnv()

	switch {
	case o.configPath != "":
		v.SetConfigFile(o.configPath)
	case os.Getenv(configFileEnv) != "":
		v.SetConfigFile(os.Getenv(configFileEnv))
	default:
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/errkit")
	}

	if o.flags != nil {
		if err := v.BindPFlags(o.flags); err != nil {
			return nil, newConfigurationError("failed to bind flags: "+err.Error(), v.AllSettings())
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, newConfigurationError("failed to read config file: "+err.Error(), v.AllSettings())
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, newConfigurationError("failed to unmarshal config: "+err.Error(), v.AllSettings())
	}

	if err := config.validate(v.AllSettings()); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate(settings map[string]any) error {
	if !LogLevel(c.LogLevel).IsValid() {
		return newConfigurationError("invalid log level: "+c.LogLevel, settings)
	}
	if c.RenderDepth < 0 {
		return newConfigurationError("render depth must not be negative", settings)
	}
	if c.Journal && c.JournalDB == "" {
		return newConfigurationError("journal enabled without a database path", settings)
	}

	return nil
}
