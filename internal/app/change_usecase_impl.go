package app

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
)

type changeNotificationUseCaseImpl struct {
	resolver   *RecipientResolver
	aggregator *TokenAggregator
	dispatcher *FanOutDispatcher
}

func NewChangeNotificationUseCase(
	resolver *RecipientResolver,
	aggregator *TokenAggregator,
	dispatcher *FanOutDispatcher,
) ChangeNotificationUseCase {
	return &changeNotificationUseCaseImpl{
		resolver:   resolver,
		aggregator: aggregator,
		dispatcher: dispatcher,
	}
}

func (uc *changeNotificationUseCaseImpl) HandleChange(ctx context.Context, input ChangeInput) (ChangeOutput, error) {
	slog.DebugContext(ctx, "handling event change",
		"kind", input.Kind,
		"calendar_id", input.CalendarID,
		"event_id", input.EventID,
	)

	mutation, calendarID, eventID, err := toMutation(input)
	if err != nil {
		return ChangeOutput{}, err
	}

	output := ChangeOutput{Action: string(mutation.Kind())}
	subject := mutation.Subject()

	recipients, err := uc.resolver.Resolve(ctx, calendarID, subject.OwnerID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to resolve recipients",
			"calendar_id", input.CalendarID,
			"event_id", input.EventID,
			"action", output.Action,
			"error", err,
		)

		output.Outcome = OutcomeLookupFailed

		return output, nil
	}

	output.RecipientCount = recipients.Count()

	if recipients.IsEmpty() {
		slog.DebugContext(ctx, "no recipients for event change",
			"calendar_id", input.CalendarID,
			"event_id", input.EventID,
		)

		output.Outcome = OutcomeSkippedNoRecipients

		return output, nil
	}

	endpoints, aggregateReport := uc.aggregator.Aggregate(ctx, recipients)
	output.EndpointCount = endpoints.Count()
	output.LookupFailures = aggregateReport.FailedCount()

	if endpoints.IsEmpty() {
		slog.DebugContext(ctx, "no endpoints for event change",
			"calendar_id", input.CalendarID,
			"event_id", input.EventID,
			"recipient_count", output.RecipientCount,
		)

		output.Outcome = OutcomeSkippedNoEndpoints

		return output, nil
	}

	intent := domain.NewNotificationIntent(mutation, calendarID, eventID)

	report, err := uc.dispatcher.Dispatch(ctx, endpoints, intent)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send notification for event change",
			"calendar_id", input.CalendarID,
			"event_id", input.EventID,
			"action", output.Action,
			"endpoint_count", output.EndpointCount,
			"error", err,
		)

		output.Outcome = OutcomeTransportFailed

		return output, nil
	}

	output.Outcome = OutcomeDispatched
	output.AcceptedCount = report.AcceptedCount()
	output.RejectedCount = report.RejectedCount()
	output.InvalidCount = len(report.InvalidEndpoints())

	return output, nil
}

func toMutation(input ChangeInput) (domain.Mutation, domain.CalendarID, domain.EventID, error) {
	kind, err := domain.NewMutationKind(input.Kind)
	if err != nil {
		return nil, domain.CalendarID{}, domain.EventID{}, NewValidationError("kind", err.Error())
	}

	calendarID, err := domain.CalendarIDFromString(input.CalendarID)
	if err != nil {
		return nil, domain.CalendarID{}, domain.EventID{}, NewValidationError("calendar_id", err.Error())
	}

	eventID, err := domain.EventIDFromString(input.EventID)
	if err != nil {
		return nil, domain.CalendarID{}, domain.EventID{}, NewValidationError("event_id", err.Error())
	}

	before, err := toSnapshot("before", input.Before, calendarID, eventID)
	if err != nil {
		return nil, domain.CalendarID{}, domain.EventID{}, err
	}

	after, err := toSnapshot("after", input.After, calendarID, eventID)
	if err != nil {
		return nil, domain.CalendarID{}, domain.EventID{}, err
	}

	mutation, err := domain.NewMutation(kind, before, after)
	if err != nil {
		return nil, domain.CalendarID{}, domain.EventID{}, NewValidationError("snapshot", err.Error())
	}

	return mutation, calendarID, eventID, nil
}

func toSnapshot(
	field string,
	in *EventSnapshotInput,
	calendarID domain.CalendarID,
	eventID domain.EventID,
) (*domain.EventSnapshot, error) {
	if in == nil {
		return nil, nil //nolint:nilnil
	}

	// An event without an owner has no actor, so every member is notified.
	var ownerID domain.UserID
	if in.OwnerID != "" {
		id, err := domain.UserIDFromString(in.OwnerID)
		if err != nil {
			return nil, NewValidationError(field+".owner_id", err.Error())
		}

		ownerID = id
	}

	return &domain.EventSnapshot{
		ID:         eventID,
		CalendarID: calendarID,
		Title:      in.Title,
		OwnerID:    ownerID,
	}, nil
}
