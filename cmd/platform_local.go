//go:build !gcloud

package main

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/KasumiMercury/primind-calendar-notify/internal/config"
	"github.com/KasumiMercury/primind-calendar-notify/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-calendar-notify/internal/observability"
	"github.com/KasumiMercury/primind-calendar-notify/internal/observability/logging"
)

func initPublisher(ctx context.Context, cfg *config.Config) (pubsub.Publisher, error) {
	if cfg.PubSub.NatsURL == "" {
		slog.Warn("NATS_URL not set, alarm alert publishing disabled")
		return nil, nil
	}

	publisher, err := pubsub.NewNATSPublisherWithStream(ctx, pubsub.NATSPublisherConfig{
		URL: cfg.PubSub.NatsURL,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("NATS publisher initialized", "url", cfg.PubSub.NatsURL)
	return publisher, nil
}

func initSubscriber(cfg *config.Config) (message.Subscriber, error) {
	if cfg.PubSub.NatsURL == "" {
		slog.Warn("NATS_URL not set, change event consumption disabled")
		return nil, nil
	}

	subscriber, err := pubsub.NewNATSSubscriber(pubsub.NATSSubscriberConfig{
		URL:        cfg.PubSub.NatsURL,
		QueueGroup: cfg.PubSub.SubscriberGroup,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("NATS subscriber initialized",
		"topic", pubsub.TopicCalendarEventChanged,
		"queue_group", cfg.PubSub.SubscriberGroup,
	)

	return subscriber, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    "calendar-notify",
			Version: Version,
		},
		Environment:    logging.EnvDev,
		SamplingRate:   cfg.Telemetry.SamplingRate,
		ExportDisabled: cfg.Telemetry.ExportDisabled,
		DefaultModule:  logging.ModuleChange,
		LogLevel:       logging.ParseLevel(cfg.Log.Level),
	})
}
