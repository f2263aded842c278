package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Black-And-White-Club/football-league/app/shared/observability"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	NATS          NATSConfig          `yaml:"nats"`
	HTTP          HTTPConfig          `yaml:"http"`
	Queue         QueueConfig         `yaml:"queue"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration. An empty URL selects the in-process bus.
type NATSConfig struct {
	URL       string `yaml:"url"`
	JetStream bool   `yaml:"jetstream"`
}

// HTTPConfig holds the JSON API listener settings.
type HTTPConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	RateLimit      float64  `yaml:"rate_limit"`
	RateBurst      int      `yaml:"rate_burst"`
}

// QueueConfig holds the kickoff job queue settings.
type QueueConfig struct {
	AutoKickoffEnabled bool `yaml:"auto_kickoff_enabled"`
	MaxWorkers         int  `yaml:"max_workers"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	ServiceName    string `yaml:"service_name"`
	MetricsAddress string `yaml:"metrics_address"`
	Environment    string `yaml:"environment"`
	LogLevel       string `yaml:"log_level"`
}

const (
	defaultHTTPAddr    = ":8080"
	defaultRateLimit   = 20
	defaultRateBurst   = 40
	defaultMaxWorkers  = 10
	defaultServiceName = "football-league"
)

// LoadConfig loads the configuration from a YAML file, letting environment
// variables override file values. When the file cannot be read the
// configuration is built from the environment alone.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres dsn is not configured")
	}
	return &cfg, nil
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	var cfg Config

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}
	applyDefaults(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("NATS_JETSTREAM"); v != "" {
		cfg.NATS.JetStream = v == "true"
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT value: %w", err)
		}
		cfg.HTTP.RateLimit = f
	}
	if v := os.Getenv("RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_BURST value: %w", err)
		}
		cfg.HTTP.RateBurst = n
	}
	if v := os.Getenv("AUTO_KICKOFF_ENABLED"); v != "" {
		cfg.Queue.AutoKickoffEnabled = v == "true"
	}
	if v := os.Getenv("QUEUE_MAX_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid QUEUE_MAX_WORKERS value: %w", err)
		}
		cfg.Queue.MaxWorkers = n
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = defaultHTTPAddr
	}
	if cfg.HTTP.RateLimit <= 0 {
		cfg.HTTP.RateLimit = defaultRateLimit
	}
	if cfg.HTTP.RateBurst <= 0 {
		cfg.HTTP.RateBurst = defaultRateBurst
	}
	if cfg.Queue.MaxWorkers <= 0 {
		cfg.Queue.MaxWorkers = defaultMaxWorkers
	}
	if cfg.Observability.ServiceName == "" {
		cfg.Observability.ServiceName = defaultServiceName
	}
	if cfg.Observability.Environment == "" {
		cfg.Observability.Environment = "development"
	}
	if cfg.Observability.LogLevel == "" {
		cfg.Observability.LogLevel = "info"
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ToObsConfig extracts the observability settings.
func ToObsConfig(appCfg *Config) observability.Config {
	return observability.Config{
		ServiceName:    appCfg.Observability.ServiceName,
		Environment:    appCfg.Observability.Environment,
		LogLevel:       appCfg.Observability.LogLevel,
		MetricsAddress: appCfg.Observability.MetricsAddress,
	}
}
