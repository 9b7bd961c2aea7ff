package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	OpenMeteo OpenMeteoConfig
	App       AppConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port        int      `validate:"min=1,max=65535"`
	GinMode     string   `validate:"oneof=debug release test"`
	CorsOrigins []string `validate:"dive,required"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// OpenMeteoConfig holds the upstream API settings
type OpenMeteoConfig struct {
	GeocodingURL string        `validate:"required,url"`
	ForecastURL  string        `validate:"required,url"`
	Language     string        `validate:"required"`
	Timeout      time.Duration `validate:"gt=0"`
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Classification string        `validate:"oneof=legacy codeset"` // category policy for icons
	SessionTTL     time.Duration `validate:"gte=0"`
}

// Load reads configuration from .env, config file and environment variables
func Load() (*Config, error) {
	// A missing .env is fine; real environment variables still apply
	_ = godotenv.Load()

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.weather-now")

	setDefaults(v)

	// Read from environment variables, e.g. WEATHER_NOW_SERVER_PORT
	v.SetEnvPrefix("WEATHER_NOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return unmarshal(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("server.corsorigins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("openmeteo.geocodingurl", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("openmeteo.forecasturl", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("openmeteo.language", "en")
	v.SetDefault("openmeteo.timeout", 10*time.Second)
	v.SetDefault("app.classification", "legacy")
	v.SetDefault("app.sessionttl", 30*time.Minute)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
