package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
)

// DispatchMetrics counts multicast dispatches and their per-endpoint results.
type DispatchMetrics struct {
	dispatches metric.Int64Counter
	endpoints  metric.Int64Counter
	failures   metric.Int64Counter
}

func NewDispatchMetrics(meter metric.Meter) (*DispatchMetrics, error) {
	dispatches, err := meter.Int64Counter("calendar_notify.dispatch.count",
		metric.WithDescription("Number of multicast dispatches"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatch counter: %w", err)
	}

	endpoints, err := meter.Int64Counter("calendar_notify.dispatch.endpoints",
		metric.WithDescription("Per-endpoint dispatch results"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create endpoint counter: %w", err)
	}

	failures, err := meter.Int64Counter("calendar_notify.dispatch.transport_failures",
		metric.WithDescription("Multicast requests that failed as a whole"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transport failure counter: %w", err)
	}

	return &DispatchMetrics{
		dispatches: dispatches,
		endpoints:  endpoints,
		failures:   failures,
	}, nil
}

func (m *DispatchMetrics) RecordDispatch(ctx context.Context, kind domain.MutationKind, report domain.DispatchReport) {
	action := attribute.String("action", string(kind))

	m.dispatches.Add(ctx, 1, metric.WithAttributes(action))

	counts := map[domain.SendStatus]int64{}
	for _, r := range report.Results {
		counts[r.Status]++
	}

	for status, n := range counts {
		m.endpoints.Add(ctx, n, metric.WithAttributes(action, attribute.String("status", string(status))))
	}
}

func (m *DispatchMetrics) RecordTransportFailure(ctx context.Context, kind domain.MutationKind) {
	m.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("action", string(kind))))
}
