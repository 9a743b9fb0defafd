//go:build gcloud

package logging

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Cloud Logging correlates entries with Cloud Trace through these fields.
const (
	cloudTraceKey        = "logging.googleapis.com/trace"
	cloudSpanIDKey       = "logging.googleapis.com/spanId"
	cloudTraceSampledKey = "logging.googleapis.com/trace_sampled"
)

// gcpTraceAttrs links a record to the span in ctx. Records logged outside a
// span, such as timer wakes and startup, carry no trace fields.
func gcpTraceAttrs(ctx context.Context, projectID string) []slog.Attr {
	if projectID == "" {
		return nil
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}

	return []slog.Attr{
		slog.String(cloudTraceKey, cloudTraceName(projectID, sc.TraceID())),
		slog.String(cloudSpanIDKey, sc.SpanID().String()),
		slog.Bool(cloudTraceSampledKey, sc.IsSampled()),
	}
}

func cloudTraceName(projectID string, traceID trace.TraceID) string {
	return "projects/" + projectID + "/traces/" + traceID.String()
}
