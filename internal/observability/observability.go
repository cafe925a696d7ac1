// Package observability bundles the logger, metrics registry, and tracer
// handed to every module at wiring time.
package observability

import (
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Observability aggregates the ambient dependencies of the application.
type Observability struct {
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Tracer   trace.Tracer
	Metrics  OperationMetrics
}

// Config controls logger behavior.
type Config struct {
	Environment string
	LogLevel    string
}

// New builds the observability stack: a JSON slog logger on stdout, a
// prometheus registry pre-loaded with Go runtime collectors, an otel tracer,
// and prometheus-backed operation metrics.
func New(cfg Config) *Observability {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	})).With(slog.String("env", cfg.Environment))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Observability{
		Logger:   logger,
		Registry: registry,
		Tracer:   otel.Tracer("olinsesp-backend"),
		Metrics:  NewPrometheusOperationMetrics(registry),
	}
}

// NewForTest returns a silent observability stack for use in tests.
func NewForTest() *Observability {
	return &Observability{
		Logger:   slog.New(slog.DiscardHandler),
		Registry: prometheus.NewRegistry(),
		Tracer:   otel.Tracer("test"),
		Metrics:  NewNoopMetrics(),
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
