//go:build gcloud

package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-googlecloud/pkg/googlecloud"
)

type GCloudPublisher struct {
	alertPublisher
}

type GCloudPublisherConfig struct {
	ProjectID string
}

func NewGCloudPublisher(ctx context.Context, cfg GCloudPublisherConfig) (*GCloudPublisher, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	publisher, err := googlecloud.NewPublisher(
		googlecloud.PublisherConfig{
			ProjectID: cfg.ProjectID,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Cloud publisher: %w", err)
	}

	return &GCloudPublisher{
		alertPublisher: newAlertPublisher(publisher),
	}, nil
}
