package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
)

type RecipientResolver struct {
	directory domain.EndpointDirectory
}

func NewRecipientResolver(directory domain.EndpointDirectory) *RecipientResolver {
	return &RecipientResolver{
		directory: directory,
	}
}

// Resolve returns the calendar members without the actor.
func (r *RecipientResolver) Resolve(ctx context.Context, calendarID domain.CalendarID, actorID domain.UserID) (domain.UserSet, error) {
	members, err := r.directory.CalendarMembers(ctx, calendarID)
	if err != nil {
		slog.WarnContext(ctx, "failed to read calendar members",
			"calendar_id", calendarID.String(),
			"error", err,
		)

		return nil, fmt.Errorf("%w: calendar %s: %w", ErrLookupFailure, calendarID, err)
	}

	recipients := domain.NewUserSet(members...)
	recipients.Remove(actorID)

	slog.DebugContext(ctx, "recipients resolved",
		"calendar_id", calendarID.String(),
		"actor_id", actorID.String(),
		"member_count", len(members),
		"recipient_count", recipients.Count(),
	)

	return recipients, nil
}
