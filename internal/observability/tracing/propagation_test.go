package tracing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/KasumiMercury/primind-calendar-notify/internal/observability/tracing"
)

func TestInjectExtractRoundTrip(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	tp := sdktrace.NewTracerProvider(sdktrace.WithSampler(sdktrace.AlwaysSample()))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "publish")
	defer span.End()

	carrier := map[string]string{}
	tracing.InjectToMap(ctx, carrier)

	require.Contains(t, carrier, "traceparent")

	extracted := trace.SpanContextFromContext(tracing.ExtractFromMap(context.Background(), carrier))

	assert.True(t, extracted.IsValid())
	assert.Equal(t, span.SpanContext().TraceID(), extracted.TraceID())
}
