package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"pluma/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// googlePubSubPublisher publishes storefront events to one topic, ordered per user.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	// A reader's events (password reset, then order paid) reach subscribers in publish order.
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// Publish sends the event to the topic and waits for the server ack
func (p *googlePubSubPublisher) Publish(ctx context.Context, event *service.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: orderingKey(event),
	}

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		// A failed ordered publish pauses its key until resumed.
		if msg.OrderingKey != "" {
			p.publisher.ResumePublish(msg.OrderingKey)
		}

		return errors.Wrapf(err, "failed to publish %s event", event.Type)
	}

	p.logger.Debug("Event published to Google Pub/Sub",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

func orderingKey(event *service.Event) string {
	if event.UserID == uuid.Nil {
		return ""
	}

	return event.UserID.String()
}
