//go:build gcloud

package pubsub

import (
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-googlecloud/pkg/googlecloud"
	"github.com/ThreeDotsLabs/watermill/message"
)

type GCloudSubscriberConfig struct {
	ProjectID string
	// SubscriptionSuffix is appended to the topic name to form the subscription.
	SubscriptionSuffix string
}

func NewGCloudSubscriber(cfg GCloudSubscriberConfig) (message.Subscriber, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	subscriber, err := googlecloud.NewSubscriber(
		googlecloud.SubscriberConfig{
			ProjectID:                cfg.ProjectID,
			GenerateSubscriptionName: googlecloud.TopicSubscriptionNameWithSuffix(cfg.SubscriptionSuffix),
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Cloud subscriber: %w", err)
	}

	return subscriber, nil
}
