// Package pubsub publishes domain events to Google Pub/Sub or a local push endpoint.
package pubsub

import (
	"context"
	"log/slog"

	"pluma/config"
	"pluma/internal/domain/constants"
	"pluma/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Publish(_ context.Context, event *service.Event) error {
	p.logger.Debug("Event dropped, publishing disabled",
		slog.String("event_type", event.Type),
		slog.String("event_id", event.ID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// eventAttributes builds the message attributes used for filtering and tracing.
func eventAttributes(event *service.Event) map[string]string {
	attributes := map[string]string{
		"event_type": event.Type,
	}
	if event.UserID != uuid.Nil {
		attributes["user_id"] = event.UserID.String()
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher for order and password reset events from pubsub.provider.
// An empty provider disables publishing.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, order and reset events are dropped")

		return &noopPublisher{logger: logger}, nil
	}

	if err := validatePubSubConfig(cfg); err != nil {
		return nil, err
	}

	publisher, err := openPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing EventPublisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func validatePubSubConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("local endpoint is required for local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return errors.New("topic ID is required for google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.Provider == constants.PubSubProviderLocal {
		logger.Info("Publishing events to local HTTP endpoint", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	}

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
