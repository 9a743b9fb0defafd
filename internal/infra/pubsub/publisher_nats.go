//go:build !gcloud

package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

type NATSPublisher struct {
	alertPublisher
}

type NATSPublisherConfig struct {
	URL string
}

func NewNATSPublisher(cfg NATSPublisherConfig) (*NATSPublisher, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         cfg.URL,
			NatsOptions: []nc.Option{nc.Timeout(10 * time.Second)},
			JetStream: nats.JetStreamConfig{
				Disabled:      false,
				AutoProvision: true,
			},
			Marshaler: &nats.NATSMarshaler{},
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	return &NATSPublisher{
		alertPublisher: newAlertPublisher(publisher),
	}, nil
}

// NewNATSPublisherWithStream provisions the JetStream stream before creating
// a publisher that relies on it.
func NewNATSPublisherWithStream(ctx context.Context, cfg NATSPublisherConfig) (*NATSPublisher, error) {
	if err := EnsureStream(ctx, cfg.URL); err != nil {
		return nil, err
	}

	logger := watermill.NewSlogLogger(slog.Default())

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         cfg.URL,
			NatsOptions: []nc.Option{nc.Timeout(10 * time.Second)},
			JetStream: nats.JetStreamConfig{
				Disabled:      false,
				AutoProvision: false,
			},
			Marshaler: &nats.NATSMarshaler{},
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	return &NATSPublisher{
		alertPublisher: newAlertPublisher(publisher),
	}, nil
}

func EnsureStream(ctx context.Context, url string) error {
	conn, err := nc.Connect(url, nc.Timeout(10*time.Second))
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	defer conn.Close()

	js, err := jetstream.New(conn)
	if err != nil {
		return fmt.Errorf("failed to create JetStream context: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Description: "Stream for calendar change and alarm alert events",
		Subjects:    []string{TopicCalendarEventChanged, TopicAlarmAlert},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      24 * time.Hour,
		MaxBytes:    100 * 1024 * 1024, // 100MB
		Storage:     jetstream.FileStorage,
		Replicas:    1,
	})
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}

	slog.Info("NATS JetStream stream configured",
		slog.String("stream", StreamName),
		slog.Any("subjects", []string{TopicCalendarEventChanged, TopicAlarmAlert}),
	)

	return nil
}
