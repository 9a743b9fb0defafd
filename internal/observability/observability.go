package observability

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/KasumiMercury/primind-calendar-notify/internal/observability/logging"
	"github.com/KasumiMercury/primind-calendar-notify/internal/observability/metrics"
	"github.com/KasumiMercury/primind-calendar-notify/internal/observability/tracing"
)

type Config struct {
	ServiceInfo logging.ServiceInfo
	Environment logging.Environment
	// GCPProjectID is shared by the log trace attributes and both exporters.
	GCPProjectID   string
	SamplingRate   float64
	ExportDisabled bool
	DefaultModule  logging.Module
	LogLevel       slog.Level
}

type Resources struct {
	Tracing *tracing.Provider
	Metrics *metrics.Provider
}

// Init installs the default logger and the global tracer and meter providers.
func Init(ctx context.Context, cfg Config) (*Resources, error) {
	slog.SetDefault(slog.New(logging.NewHandler(os.Stdout, logging.HandlerConfig{
		Level:         cfg.LogLevel,
		Service:       cfg.ServiceInfo,
		Environment:   cfg.Environment,
		GCPProjectID:  cfg.GCPProjectID,
		DefaultModule: cfg.DefaultModule,
	})))

	tp, err := tracing.NewProvider(ctx, tracing.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
		ProjectID:      cfg.GCPProjectID,
		SamplingRate:   cfg.SamplingRate,
	})
	if err != nil {
		return nil, err
	}

	mp, err := metrics.NewProvider(ctx, metrics.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
		ProjectID:      cfg.GCPProjectID,
		ExportDisabled: cfg.ExportDisabled,
	})
	if err != nil {
		_ = tp.Shutdown(ctx)

		return nil, err
	}

	otel.SetTracerProvider(tp.TracerProvider())
	otel.SetMeterProvider(mp.MeterProvider())
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Resources{
		Tracing: tp,
		Metrics: mp,
	}, nil
}

func (r *Resources) Shutdown(ctx context.Context) error {
	return errors.Join(
		r.Tracing.Shutdown(ctx),
		r.Metrics.Shutdown(ctx),
	)
}
