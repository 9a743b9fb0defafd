package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
)

// DispatchRecorder receives the outcome of every completed dispatch.
type DispatchRecorder interface {
	RecordDispatch(ctx context.Context, kind domain.MutationKind, report domain.DispatchReport)
	RecordTransportFailure(ctx context.Context, kind domain.MutationKind)
}

type FanOutDispatcher struct {
	transport domain.PushTransport
	directory domain.EndpointDirectory
	recorder  DispatchRecorder
}

func NewFanOutDispatcher(
	transport domain.PushTransport,
	directory domain.EndpointDirectory,
	recorder DispatchRecorder,
) *FanOutDispatcher {
	return &FanOutDispatcher{
		transport: transport,
		directory: directory,
		recorder:  recorder,
	}
}

// Dispatch sends intent to every endpoint in a single multicast request.
// Only a failure of the request as a whole is returned as an error.
func (d *FanOutDispatcher) Dispatch(
	ctx context.Context,
	endpoints domain.EndpointSet,
	intent domain.NotificationIntent,
) (domain.DispatchReport, error) {
	if endpoints.IsEmpty() {
		slog.DebugContext(ctx, "no endpoints to dispatch",
			"calendar_id", intent.CalendarID.String(),
			"event_id", intent.EventID.String(),
		)

		return domain.DispatchReport{}, nil
	}

	msg := domain.MulticastMessage{
		Endpoints: endpoints.Slice(),
		Title:     intent.Title,
		Body:      intent.Body,
		Data:      intent.Data(),
	}

	results, err := d.transport.SendMulticast(ctx, msg)
	if err != nil {
		if d.recorder != nil {
			d.recorder.RecordTransportFailure(ctx, intent.Kind)
		}

		return domain.DispatchReport{}, fmt.Errorf("%w: %v", ErrTransportFailure, err)
	}

	report := domain.NewDispatchReport(results)

	if d.recorder != nil {
		d.recorder.RecordDispatch(ctx, intent.Kind, report)
	}

	if invalid := report.InvalidEndpoints(); len(invalid) > 0 && d.directory != nil {
		if err := d.directory.ReportInvalidEndpoints(ctx, invalid); err != nil {
			slog.WarnContext(ctx, "failed to report invalid endpoints",
				"count", len(invalid),
				"error", err,
			)
		}
	}

	slog.InfoContext(ctx, "multicast dispatched",
		"calendar_id", intent.CalendarID.String(),
		"event_id", intent.EventID.String(),
		"action", string(intent.Kind),
		"endpoint_count", len(msg.Endpoints),
		"accepted_count", report.AcceptedCount(),
		"rejected_count", report.RejectedCount(),
		"invalid_count", len(report.InvalidEndpoints()),
	)

	return report, nil
}
