//go:build gcloud

package metrics

import (
	"context"
	"fmt"

	mexporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// NewProvider exports to Cloud Monitoring on a periodic reader unless export
// is disabled.
func NewProvider(_ context.Context, cfg Config) (*Provider, error) {
	if cfg.ExportDisabled {
		return newRecordOnlyProvider(cfg), nil
	}

	var opts []mexporter.Option
	if cfg.ProjectID != "" {
		opts = append(opts, mexporter.WithProjectID(cfg.ProjectID))
	}

	exporter, err := mexporter.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud monitoring exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(newResource(cfg)),
	)

	return &Provider{mp: mp}, nil
}
