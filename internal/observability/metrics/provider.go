package metrics

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
)

type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	// ProjectID and ExportDisabled only apply to the gcloud build.
	ProjectID      string
	ExportDisabled bool
}

type Provider struct {
	mp *sdkmetric.MeterProvider
}

func (p *Provider) MeterProvider() *sdkmetric.MeterProvider {
	return p.mp
}

func (p *Provider) Meter(name string) metric.Meter {
	return p.mp.Meter(name)
}

func (p *Provider) Shutdown(ctx context.Context) error {
	return p.mp.Shutdown(ctx)
}

func newResource(cfg Config) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		semconv.DeploymentEnvironmentName(cfg.Environment),
	)
}

// newRecordOnlyProvider records instruments without a reader, so nothing is
// exported.
func newRecordOnlyProvider(cfg Config) *Provider {
	return &Provider{mp: sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(newResource(cfg)),
	)}
}
