package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for furniture-api.
type Config struct {
	// HTTP Server
	ServiceName        string        `env:"SERVICE_NAME" envDefault:"furniture-api"`
	Environment        string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort           int           `env:"HTTP_PORT" envDefault:"8000"`
	MetricsPort        int           `env:"METRICS_PORT" envDefault:"9091"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	EnableSwagger      bool          `env:"ENABLE_SWAGGER" envDefault:"true"`

	// Model Provider
	ProviderAPIKey  string        `env:"GMI_CLOUD_API_KEY"`
	ProviderBaseURL string        `env:"PROVIDER_BASE_URL" envDefault:"https://api.gmi-serving.com/v1"`
	ProviderModel   string        `env:"PROVIDER_MODEL" envDefault:"moonshotai/Kimi-K2-Instruct"`
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"30s"`

	// Observability / Logging
	LogLevel          string  `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat         string  `env:"LOG_FORMAT" envDefault:"console"`
	LogPIILevel       string  `env:"LOG_PII_LEVEL" envDefault:"hashed"`
	EnableTracing     bool    `env:"ENABLE_TRACING" envDefault:"false"`
	EnableOTelMetrics bool    `env:"ENABLE_OTEL_METRICS" envDefault:"false"`
	OTLPEndpoint      string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders       string  `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	SamplingRate      float64 `env:"OTEL_SAMPLING_RATE" envDefault:"1.0"`
	ServiceVersion    string  `env:"SERVICE_VERSION" envDefault:"dev"`
}

// Load parses environment variables into Config.
//
// A missing GMI_CLOUD_API_KEY is not a load error: the AI-backed endpoints
// report it per request instead.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.LogPIILevel = strings.ToLower(strings.TrimSpace(cfg.LogPIILevel))
	cfg.ProviderAPIKey = strings.TrimSpace(cfg.ProviderAPIKey)
	cfg.ProviderBaseURL = strings.TrimRight(strings.TrimSpace(cfg.ProviderBaseURL), "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges that env tags cannot express.
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.HTTPPort)
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		return fmt.Errorf("METRICS_PORT must be between 0 and 65535, got %d", c.MetricsPort)
	}
	if c.MetricsPort != 0 && c.MetricsPort == c.HTTPPort {
		return fmt.Errorf("METRICS_PORT must differ from HTTP_PORT")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	switch c.LogPIILevel {
	case "none", "hashed", "full":
	default:
		return fmt.Errorf("LOG_PII_LEVEL must be none, hashed or full, got %q", c.LogPIILevel)
	}
	if _, err := url.ParseRequestURI(c.ProviderBaseURL); err != nil {
		return fmt.Errorf("invalid PROVIDER_BASE_URL: %w", err)
	}
	if strings.TrimSpace(c.ProviderModel) == "" {
		return fmt.Errorf("PROVIDER_MODEL must not be empty")
	}
	if c.ProviderTimeout <= 0 {
		return fmt.Errorf("PROVIDER_TIMEOUT must be positive")
	}
	if c.SamplingRate < 0 || c.SamplingRate > 1 {
		return fmt.Errorf("OTEL_SAMPLING_RATE must be within [0, 1]")
	}
	if (c.EnableTracing || c.EnableOTelMetrics) && strings.TrimSpace(c.OTLPEndpoint) == "" {
		return fmt.Errorf("OTEL_EXPORTER_OTLP_ENDPOINT is required when tracing or OTel metrics are enabled")
	}
	return nil
}

// HasProviderCredential reports whether a provider API key was configured.
func (c *Config) HasProviderCredential() bool {
	return c.ProviderAPIKey != ""
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// MetricsAddr returns the Prometheus listen address, or "" when disabled.
func (c *Config) MetricsAddr() string {
	if c.MetricsPort == 0 {
		return ""
	}
	return fmt.Sprintf(":%d", c.MetricsPort)
}

// OTLPHeaderMap parses OTEL_EXPORTER_OTLP_HEADERS ("k1=v1,k2=v2").
func (c *Config) OTLPHeaderMap() map[string]string {
	headers := make(map[string]string)
	for _, pair := range strings.Split(c.OTLPHeaders, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || strings.TrimSpace(key) == "" {
			continue
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return headers
}
