package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/cineflix/dbservice/pkg/interfaces"
)

// NATSPublisher forwards entity lifecycle events from the local bus to
// NATS JetStream so downstream consumers can react to catalog changes.
type NATSPublisher struct {
	nc      *nats.Conn
	js      jetstream.JetStream
	subject string
	logger  *zap.Logger
}

// NATSConfig holds the connection settings for the integration publisher.
type NATSConfig struct {
	URL           string        `koanf:"url"`
	ClientID      string        `koanf:"client_id"`
	SubjectPrefix string        `koanf:"subject_prefix"`
	MaxReconnect  int           `koanf:"max_reconnect"`
	ReconnectWait time.Duration `koanf:"reconnect_wait"`
}

// NewNATSPublisher connects to NATS and creates a JetStream publisher.
// The returned cleanup closes the connection.
func NewNATSPublisher(cfg NATSConfig, logger *zap.Logger) (*NATSPublisher, func(), error) {
	opts := []nats.Option{
		nats.Name(cfg.ClientID),
		nats.MaxReconnects(cfg.MaxReconnect),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	subject := cfg.SubjectPrefix
	if subject == "" {
		subject = "cineflix"
	}

	publisher := &NATSPublisher{
		nc:      nc,
		js:      js,
		subject: subject,
		logger:  logger.Named("nats"),
	}

	cleanup := func() {
		nc.Close()
	}

	return publisher, cleanup, nil
}

// eventEnvelope wraps an event with metadata for transport.
type eventEnvelope struct {
	ID          string      `json:"id"`
	EventType   string      `json:"event_type"`
	AggregateID string      `json:"aggregate_id"`
	OccurredAt  int64       `json:"occurred_at"`
	Data        interface{} `json:"data"`
}

// Handle publishes an event to JetStream. Implements interfaces.EventHandler
// for every event type, so it can be subscribed to each published kind.
func (p *NATSPublisher) Handle(ctx context.Context, event interfaces.Event) error {
	envelope := eventEnvelope{
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		OccurredAt:  event.Timestamp(),
		Data:        event,
	}
	if base, ok := event.(*BaseEvent); ok {
		envelope.ID = base.ID
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := fmt.Sprintf("%s.%s", p.subject, event.EventType())

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pubOpts := []jetstream.PublishOpt{}
	if envelope.ID != "" {
		// Deduplication across redeliveries
		pubOpts = append(pubOpts, jetstream.WithMsgID(envelope.ID))
	}

	ack, err := p.js.Publish(pubCtx, subject, data, pubOpts...)
	if err != nil {
		p.logger.Error("failed to publish event",
			zap.Error(err),
			zap.String("event_type", event.EventType()),
			zap.String("subject", subject))
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("event published",
		zap.String("event_type", event.EventType()),
		zap.String("subject", subject),
		zap.Uint64("sequence", ack.Sequence))

	return nil
}

// EventType marks the publisher as a catch-all handler.
func (p *NATSPublisher) EventType() string {
	return "*"
}

// SubscribeAll registers the publisher for every known event type on the bus.
func (p *NATSPublisher) SubscribeAll(bus interfaces.EventBus) error {
	types := []string{
		MovieCreated, MovieUpdated, MovieDeleted, MovieRated,
		UserCreated, UserUpdated, UserDeleted,
		ReviewCreated, ReviewUpdated, ReviewDeleted,
		FavoriteAdded, FavoriteRemoved, WatchListAdded, WatchListRemoved,
	}
	for _, t := range types {
		if err := bus.Subscribe(t, p); err != nil {
			return err
		}
	}
	return nil
}
