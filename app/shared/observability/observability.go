// Package observability builds the logger, tracer and metrics handed to every module.
package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Config carries the settings observability needs from the application config.
type Config struct {
	ServiceName    string
	Environment    string
	LogLevel       string
	MetricsAddress string
}

// Observability bundles the telemetry primitives shared by the modules.
type Observability struct {
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Metrics  *PrometheusMetrics
	Registry *prometheus.Registry
}

// New builds the logger, tracer and a fresh prometheus registry.
func New(cfg Config) Observability {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter is New with an explicit log destination.
func NewWithWriter(cfg Config, w io.Writer) Observability {
	logger := NewLogger(cfg, w)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return Observability{
		Logger:   logger,
		Tracer:   otel.GetTracerProvider().Tracer(cfg.ServiceName),
		Metrics:  NewPrometheusMetrics(reg, metricsNamespace(cfg.ServiceName)),
		Registry: reg,
	}
}

// NewLogger returns a JSON logger in production and a text logger elsewhere.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Environment, "production") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if cfg.ServiceName != "" {
		logger = logger.With(slog.String("service", cfg.ServiceName))
	}
	return logger
}

// ParseLevel maps a config string onto a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func metricsNamespace(serviceName string) string {
	return strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(serviceName)
}
