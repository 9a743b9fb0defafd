//go:build gcloud

package tracing

import (
	"context"
	"fmt"

	texporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/trace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewProvider exports sampled spans to Cloud Trace. Without a ProjectID the
// exporter falls back to the project of the default credentials.
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	var opts []texporter.Option
	if cfg.ProjectID != "" {
		opts = append(opts, texporter.WithProjectID(cfg.ProjectID))
	}

	exporter, err := texporter.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(newResource(cfg)),
		sdktrace.WithSampler(newSampler(cfg.SamplingRate)),
	)

	return &Provider{tp: tp}, nil
}
