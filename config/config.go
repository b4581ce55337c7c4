package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"event-calendar/pkg/datemath"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Event calendar specifics
	Backend    BackendConfig
	Validation ValidationConfig
	Views      ViewsConfig
	RateLimit  RateLimitConfig
	Calendar   CalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BackendConfig points at the events REST backend.
type BackendConfig struct {
	URL             string
	Timeout         time.Duration
	DefaultTimezone string
	ProbeSchedule   string
}

type ValidationConfig struct {
	AllowEqualEnd     bool
	LocationMaxLength int
}

type ViewsConfig struct {
	TTL  time.Duration
	Size int
}

type RateLimitConfig struct {
	SubmitPerMin int
}

type CalendarConfig struct {
	WeekStart time.Weekday
}

// Load loads configuration using Viper.
// The config.yaml file is searched in ./config, the working directory and /etc/app/.
func Load() (*Config, error) {
	return load(viper.New(), "./config", ".", "/etc/app/")
}

func load(v *viper.Viper, paths ...string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Backend
	cfg.Backend.URL = v.GetString("backend.url")
	cfg.Backend.Timeout = v.GetDuration("backend.timeout")
	cfg.Backend.DefaultTimezone = v.GetString("backend.default_timezone")
	cfg.Backend.ProbeSchedule = v.GetString("backend.probe_schedule")
	if backendURL := v.GetString("backend_url"); backendURL != "" {
		cfg.Backend.URL = backendURL
	}
	if tz := v.GetString("default_timezone"); tz != "" {
		cfg.Backend.DefaultTimezone = tz
	}

	// Validation, views and limits
	cfg.Validation.AllowEqualEnd = v.GetBool("validation.allow_equal_end")
	cfg.Validation.LocationMaxLength = v.GetInt("validation.location_max_length")
	cfg.Views.TTL = v.GetDuration("views.ttl")
	cfg.Views.Size = v.GetInt("views.size")
	cfg.RateLimit.SubmitPerMin = v.GetInt("rate_limit.submit_per_min")

	weekStart, err := datemath.ParseWeekday(v.GetString("calendar.week_start"))
	if err != nil {
		return nil, fmt.Errorf("calendar.week_start: %w", err)
	}
	cfg.Calendar.WeekStart = weekStart

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("backend.url", "http://localhost:8081")
	v.SetDefault("backend.timeout", "10s")
	v.SetDefault("backend.default_timezone", "UTC")
	v.SetDefault("backend.probe_schedule", "@every 30s")

	v.SetDefault("validation.allow_equal_end", false)
	v.SetDefault("validation.location_max_length", 255)
	v.SetDefault("views.ttl", "30m")
	v.SetDefault("views.size", 1024)
	v.SetDefault("rate_limit.submit_per_min", 30)
	v.SetDefault("calendar.week_start", "sunday")
}

func (c *Config) validate() error {
	if c.Backend.URL == "" {
		return errors.New("backend.url is required")
	}
	if _, err := datemath.NewParser(c.Backend.DefaultTimezone); err != nil {
		return fmt.Errorf("backend.default_timezone: %w", err)
	}
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", c.HTTPServer.Port)
	}
	return nil
}
