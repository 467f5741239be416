package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigEnv points at an explicit config file.
	ConfigEnv = "TABVIEW_CONFIG"
	// EnvPrefix prefixes env overrides, e.g. TABVIEW_LOG_LEVEL.
	EnvPrefix = "TABVIEW"
)

// Config holds tabview settings.
type Config struct {
	Tabs  TabsConfig  `mapstructure:"tabs"`
	UI    UIConfig    `mapstructure:"ui"`
	Log   LogConfig   `mapstructure:"log"`
	Trace TraceConfig `mapstructure:"trace"`
}

// TabsConfig selects the tab map source. Empty File means the built-in map.
type TabsConfig struct {
	File string `mapstructure:"file"`
}

// UIConfig holds terminal program options.
type UIConfig struct {
	Mouse     bool `mapstructure:"mouse"`
	AltScreen bool `mapstructure:"alt_screen"`
}

// LogConfig holds logger settings. Empty File discards logs.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// TraceConfig holds OTLP export settings. Empty Endpoint falls back to
// OTEL_EXPORTER_OTLP_ENDPOINT, and export is off when both are empty.
type TraceConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

// Load reads configuration from path, or from TABVIEW_CONFIG, or from
// <user config dir>/tabview/config.yaml. A missing default file is not an
// error; a missing explicit file is. Env vars with prefix TABVIEW_ override.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("tabs.file", "")
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("trace.endpoint", "")
	v.SetDefault("trace.service_name", "tabview")

	v.SetConfigType("yaml")
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "tabview"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Trace.Endpoint == "" {
		c.Trace.Endpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}
	return c, nil
}
