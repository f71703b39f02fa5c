package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the application configuration. Values are read from a YAML file
// and can be overridden by environment variables.
type Config struct {
	// Environment selects the logger preset: development or production.
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP configures the API server. Durations use time.ParseDuration syntax.
	HTTP struct {
		Addr              string        `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout bounds the handling of one request; 0 disables it.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes of 0 uses the net/http default.
		MaxHeaderBytes int    `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		MetricsPath    string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// GraphQL configures the GraphQL endpoint
	GraphQL struct {
		// Path is the URL path of the GraphQL endpoint
		Path string `env:"GRAPHQL_PATH" env-default:"/graphql" yaml:"path"`
		// MaxDepth limits the nesting depth of queries
		MaxDepth int `env:"GRAPHQL_MAX_DEPTH" env-default:"10" yaml:"maxDepth"`
	} `yaml:"graphql"`

	// Store configures the in-memory car store
	Store struct {
		// Uniqueness selects the duplicate-check key on insert: "id" or "brand_model"
		Uniqueness string `env:"STORE_UNIQUENESS" env-default:"id" yaml:"uniqueness"`
		// SkipSeed starts the store empty instead of with the demo cars
		SkipSeed bool `env:"STORE_SKIP_SEED" yaml:"skipSeed"`
	} `yaml:"store"`

	// Garage configures the application layer
	Garage struct {
		// OwnersPerCar is how many random owners each car reports
		OwnersPerCar int `env:"GARAGE_OWNERS_PER_CAR" env-default:"2" yaml:"ownersPerCar"`
	} `yaml:"garage"`

	// GracefulShutdownTimeout is how long serve waits for in-flight requests on SIGINT/SIGTERM.
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config
// struct. A missing file is not an error: defaults and environment variables
// are used instead.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
