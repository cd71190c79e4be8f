// Package config loads generator and server settings from defaults, file and environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/palemoky/pokedex-data/internal/locale"
)

// Config holds all configuration for the generator and the lookup server
type Config struct {
	Source    SourceConfig    `mapstructure:"source"`
	Output    OutputConfig    `mapstructure:"output"`
	Locale    string          `mapstructure:"locale"`
	Server    ServerConfig    `mapstructure:"server"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// SourceConfig holds where the CSV tables are read from
type SourceConfig struct {
	BaseURL           string        `mapstructure:"base_url"` // http(s) URL or local directory
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"` // 0 disables pacing
}

// OutputConfig holds where pokedex.json and encounters.json are written
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// ServerConfig holds lookup server configuration
type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	DataDir string `mapstructure:"data_dir"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// LoadDotEnv exports the variables of a .env file in the working directory,
// if there is one. Variables already set in the environment win.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("source.base_url", "https://raw.githubusercontent.com/PokeAPI/pokeapi/master/data/v2/csv/")
	v.SetDefault("source.timeout", 2*time.Minute)
	v.SetDefault("source.requests_per_second", 4.0)
	v.SetDefault("output.dir", "data/generated")
	v.SetDefault("locale", locale.Korean.Tag)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.data_dir", "data/generated")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", 10.0)
	v.SetDefault("rate_limit.burst", 20)
}

func bindEnvVars(v *viper.Viper) {
	// Source
	if base := os.Getenv("POKEDEX_SOURCE_URL"); base != "" {
		v.Set("source.base_url", base)
	}
	if timeout := os.Getenv("POKEDEX_SOURCE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			v.Set("source.timeout", d)
		}
	}

	// Output
	if dir := os.Getenv("POKEDEX_OUTPUT_DIR"); dir != "" {
		v.Set("output.dir", dir)
		v.Set("server.data_dir", dir)
	}
	if tag := os.Getenv("POKEDEX_LOCALE"); tag != "" {
		v.Set("locale", tag)
	}

	// Server
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			v.Set("server.port", p)
		}
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		v.Set("server.mode", mode)
	}

	// Rate Limit
	if enabled := os.Getenv("RATE_LIMIT_ENABLED"); enabled != "" {
		v.Set("rate_limit.enabled", enabled == "true")
	}
	if rps := os.Getenv("RATE_LIMIT_RPS"); rps != "" {
		if r, err := strconv.ParseFloat(rps, 64); err == nil {
			v.Set("rate_limit.requests_per_second", r)
		}
	}
	if burst := os.Getenv("RATE_LIMIT_BURST"); burst != "" {
		if b, err := strconv.Atoi(burst); err == nil {
			v.Set("rate_limit.burst", b)
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Source.BaseURL == "" {
		return fmt.Errorf("source base_url cannot be empty")
	}

	if c.Source.Timeout < 0 {
		return fmt.Errorf("source timeout cannot be negative")
	}

	if c.Source.RequestsPerSecond < 0 {
		return fmt.Errorf("source requests_per_second cannot be negative")
	}

	if c.Output.Dir == "" {
		return fmt.Errorf("output dir cannot be empty")
	}

	if _, err := locale.Resolve(c.Locale); err != nil {
		return err
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	if c.Server.Mode != "debug" && c.Server.Mode != "release" && c.Server.Mode != "test" {
		return fmt.Errorf("invalid server mode: %s (must be 'debug', 'release', or 'test')", c.Server.Mode)
	}

	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("rate limit requests_per_second must be positive")
	}

	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit burst must be positive")
	}

	return nil
}

// ResolvedLocale returns the locale the configured tag matches
func (c *Config) ResolvedLocale() locale.Locale {
	loc, err := locale.Resolve(c.Locale)
	if err != nil {
		return locale.Korean
	}
	return loc
}
