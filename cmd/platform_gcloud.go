//go:build gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/KasumiMercury/primind-calendar-notify/internal/config"
	"github.com/KasumiMercury/primind-calendar-notify/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-calendar-notify/internal/observability"
	"github.com/KasumiMercury/primind-calendar-notify/internal/observability/logging"
)

func initPublisher(ctx context.Context, cfg *config.Config) (pubsub.Publisher, error) {
	publisher, err := pubsub.NewGCloudPublisher(ctx, pubsub.GCloudPublisherConfig{
		ProjectID: cfg.PubSub.GCloudProjectID,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Google Cloud Pub/Sub publisher initialized",
		"project_id", cfg.PubSub.GCloudProjectID,
	)

	return publisher, nil
}

func initSubscriber(cfg *config.Config) (message.Subscriber, error) {
	subscriber, err := pubsub.NewGCloudSubscriber(pubsub.GCloudSubscriberConfig{
		ProjectID:          cfg.PubSub.GCloudProjectID,
		SubscriptionSuffix: "_" + cfg.PubSub.SubscriberGroup,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Google Cloud Pub/Sub subscriber initialized",
		"topic", pubsub.TopicCalendarEventChanged,
		"project_id", cfg.PubSub.GCloudProjectID,
	)

	return subscriber, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "calendar-notify"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = cfg.PubSub.GCloudProjectID
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:    env,
		GCPProjectID:   projectID,
		SamplingRate:   cfg.Telemetry.SamplingRate,
		ExportDisabled: cfg.Telemetry.ExportDisabled,
		DefaultModule:  logging.ModuleChange,
		LogLevel:       logging.ParseLevel(cfg.Log.Level),
	})
}
