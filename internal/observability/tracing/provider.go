package tracing

import (
	"context"

	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
)

type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	// ProjectID is the GCP project spans are exported to. Only the gcloud
	// build reads it.
	ProjectID    string
	SamplingRate float64
}

type Provider struct {
	tp *sdktrace.TracerProvider
}

func (p *Provider) TracerProvider() *sdktrace.TracerProvider {
	return p.tp
}

func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}

func newResource(cfg Config) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		semconv.DeploymentEnvironmentName(cfg.Environment),
	)
}

// newSampler follows the caller's sampling decision and samples the given
// fraction of root spans.
func newSampler(rate float64) sdktrace.Sampler {
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(rate))
}
