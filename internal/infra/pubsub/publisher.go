package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
	"github.com/KasumiMercury/primind-calendar-notify/internal/observability/tracing"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=pubsub

type Publisher interface {
	PublishAlarmAlert(ctx context.Context, slot int, alert domain.Alert) error
	io.Closer
}

// alertPublisher is the transport independent part of Publisher.
type alertPublisher struct {
	publisher message.Publisher
	now       func() time.Time
}

func newAlertPublisher(publisher message.Publisher) alertPublisher {
	return alertPublisher{
		publisher: publisher,
		now:       time.Now,
	}
}

func newAlertMessage(ctx context.Context, slot int, alert domain.Alert, postedAt time.Time) (*message.Message, error) {
	payload, err := json.Marshal(NewAlarmAlertEvent(slot, alert, postedAt))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("event_type", TopicAlarmAlert)
	msg.Metadata.Set("channel_id", alert.ChannelID)
	msg.Metadata.Set("slot", strconv.Itoa(slot))

	tracing.InjectToMap(ctx, msg.Metadata)

	return msg, nil
}

func (p alertPublisher) PublishAlarmAlert(ctx context.Context, slot int, alert domain.Alert) error {
	msg, err := newAlertMessage(ctx, slot, alert, p.now())
	if err != nil {
		return err
	}

	if err := p.publisher.Publish(TopicAlarmAlert, msg); err != nil {
		slog.ErrorContext(ctx, "failed to publish alarm alert",
			slog.Int("slot", slot),
			slog.String("error", err.Error()),
		)

		return fmt.Errorf("failed to publish event: %w", err)
	}

	slog.DebugContext(ctx, "published alarm alert",
		slog.Int("slot", slot),
		slog.String("message_id", msg.UUID),
	)

	return nil
}

func (p alertPublisher) Close() error {
	return p.publisher.Close()
}
