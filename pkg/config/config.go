// Package config loads moodiary settings from a .moodiary file and
// MOODIARY_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/moodiary/pkg/logging"
	"tableflip.dev/moodiary/pkg/weather"
)

// EnvConfigPath names a directory searched first for the config file.
const EnvConfigPath = "MOODIARY_CONFIG_PATH"

// Config holds every setting.
type Config struct {
	Path     string        `mapstructure:"path"`
	Weather  WeatherConfig `mapstructure:"weather"`
	LogLevel string        `mapstructure:"log_level"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// WeatherConfig configures the OpenWeatherMap lookup.
type WeatherConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	Latitude  float64       `mapstructure:"latitude"`
	Longitude float64       `mapstructure:"longitude"`
	Units     string        `mapstructure:"units"`
	Endpoint  string        `mapstructure:"endpoint"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// BasePath implements store.Config.
func (c *Config) BasePath() string {
	return c.Path
}

// Enabled reports whether a weather lookup can be attempted.
func (w WeatherConfig) Enabled() bool {
	return w.APIKey != "" && (w.Latitude != 0 || w.Longitude != 0)
}

// Fetcher builds the OpenWeatherMap fetcher for w.
func (w WeatherConfig) Fetcher() *weather.OpenWeatherMap {
	return &weather.OpenWeatherMap{
		APIKey:    w.APIKey,
		Latitude:  w.Latitude,
		Longitude: w.Longitude,
		Units:     w.Units,
		Endpoint:  w.Endpoint,
	}
}

// Load reads the configuration with the default viper lookup.
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith reads the configuration through v.
func LoadWith(v *viper.Viper) (*Config, error) {
	v.SetDefault("path", "~/.moodiary.db")
	v.SetDefault("log_level", "warn")
	v.SetDefault("weather.units", "metric")
	v.SetDefault("weather.endpoint", weather.DefaultEndpoint)
	v.SetDefault("weather.timeout", "5s")
	v.SetDefault("weather.api_key", "")
	v.SetDefault("weather.latitude", 0.0)
	v.SetDefault("weather.longitude", 0.0)

	v.SetConfigName(".moodiary") // .yaml is implicit
	v.SetEnvPrefix("MOODIARY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(EnvConfigPath); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	path, err := homedir.Expand(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("config: expand path %q: %w", cfg.Path, err)
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail late.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Path) == "" {
		problems = append(problems, "path must not be empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log_level %q", c.LogLevel))
	}
	// Temperatures are stored and rendered in °C.
	if c.Weather.Units != "metric" {
		problems = append(problems, fmt.Sprintf("invalid weather.units %q: only metric is supported", c.Weather.Units))
	}
	if c.Weather.Latitude < -90 || c.Weather.Latitude > 90 {
		problems = append(problems, fmt.Sprintf("invalid weather.latitude %v", c.Weather.Latitude))
	}
	if c.Weather.Longitude < -180 || c.Weather.Longitude > 180 {
		problems = append(problems, fmt.Sprintf("invalid weather.longitude %v", c.Weather.Longitude))
	}
	if c.Weather.Timeout <= 0 {
		problems = append(problems, "weather.timeout must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}
