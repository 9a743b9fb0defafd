package pubsub

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/KasumiMercury/primind-calendar-notify/internal/app"
	"github.com/KasumiMercury/primind-calendar-notify/internal/observability/logging"
	"github.com/KasumiMercury/primind-calendar-notify/internal/observability/tracing"
)

const changeHandlerName = "calendar_change_fanout"

type ChangeConsumer struct {
	useCase app.ChangeNotificationUseCase
}

func NewChangeConsumer(useCase app.ChangeNotificationUseCase) *ChangeConsumer {
	return &ChangeConsumer{
		useCase: useCase,
	}
}

// Handle runs the fan-out for one change event. Malformed or invalid events
// are acknowledged and dropped since redelivery cannot fix them.
func (c *ChangeConsumer) Handle(msg *message.Message) error {
	ctx := tracing.ExtractFromMap(msg.Context(), msg.Metadata)
	ctx = logging.WithRequestID(ctx, logging.ValidateAndExtractRequestID(msg.UUID))
	ctx = logging.WithModule(ctx, logging.ModuleChange)

	input, err := DecodeChangeEvent(msg.Payload)
	if err != nil {
		slog.WarnContext(ctx, "dropping malformed change event",
			slog.String("message_id", msg.UUID),
			slog.String("error", err.Error()),
		)

		return nil
	}

	output, err := c.useCase.HandleChange(ctx, input)
	if err != nil {
		if app.IsValidationError(err) {
			slog.WarnContext(ctx, "dropping invalid change event",
				slog.String("message_id", msg.UUID),
				slog.String("error", err.Error()),
			)

			return nil
		}

		return fmt.Errorf("failed to handle change event: %w", err)
	}

	slog.InfoContext(ctx, "change event handled",
		slog.String("message_id", msg.UUID),
		slog.String("outcome", string(output.Outcome)),
		slog.Int("endpoint_count", output.EndpointCount),
	)

	return nil
}

func NewRouter() (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	router.AddMiddleware(middleware.Recoverer)

	return router, nil
}

func RegisterChangeConsumer(router *message.Router, subscriber message.Subscriber, consumer *ChangeConsumer) error {
	if router == nil || subscriber == nil {
		return errors.New("router and subscriber are required")
	}

	router.AddNoPublisherHandler(
		changeHandlerName,
		TopicCalendarEventChanged,
		subscriber,
		consumer.Handle,
	)

	return nil
}
