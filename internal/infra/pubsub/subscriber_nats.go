//go:build !gcloud

package pubsub

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
)

type NATSSubscriberConfig struct {
	URL string
	// QueueGroup load-balances change events across service instances.
	QueueGroup string
}

func NewNATSSubscriber(cfg NATSSubscriberConfig) (message.Subscriber, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	subscriber, err := nats.NewSubscriber(
		nats.SubscriberConfig{
			URL:              cfg.URL,
			QueueGroupPrefix: cfg.QueueGroup,
			SubscribersCount: 4,
			AckWaitTimeout:   30 * time.Second,
			CloseTimeout:     30 * time.Second,
			NatsOptions:      []nc.Option{nc.Timeout(10 * time.Second)},
			Unmarshaler:      &nats.NATSMarshaler{},
			JetStream: nats.JetStreamConfig{
				Disabled:      false,
				AutoProvision: false,
				DurablePrefix: cfg.QueueGroup,
			},
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}

	return subscriber, nil
}
