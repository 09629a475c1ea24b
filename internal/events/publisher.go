package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const EventFeeStructureAssigned = "fee_structure.assigned"

// AssignmentEvent is published whenever a merchant is (re)assigned a fee
// structure.
type AssignmentEvent struct {
	EventType      string    `json:"event_type"`
	AssignmentID   string    `json:"assignment_id"`
	MerchantID     string    `json:"merchant_id"`
	FeeStructureID string    `json:"fee_structure_id"`
	AssignedBy     string    `json:"assigned_by,omitempty"`
	AssignedAt     time.Time `json:"assigned_at"`
	Timestamp      int64     `json:"timestamp"`
}

// Publisher is implemented by anything that can fan out assignment events.
type Publisher interface {
	PublishAssignment(ctx context.Context, event *AssignmentEvent) error
}

type EventPublisher struct {
	rdb     *redis.Client
	channel string
	logger  *zap.Logger
}

func NewEventPublisher(rdb *redis.Client, channel string, logger *zap.Logger) *EventPublisher {
	return &EventPublisher{
		rdb:     rdb,
		channel: channel,
		logger:  logger,
	}
}

// PublishAssignment publishes to the configured channel.
func (p *EventPublisher) PublishAssignment(ctx context.Context, event *AssignmentEvent) error {
	payload, err := encode(event, time.Now())
	if err != nil {
		p.logger.Error("failed to marshal assignment event",
			zap.String("merchant_id", event.MerchantID),
			zap.Error(err))
		return err
	}

	if err := p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
		p.logger.Error("failed to publish assignment event",
			zap.String("channel", p.channel),
			zap.String("merchant_id", event.MerchantID),
			zap.Error(err))
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("published assignment event",
		zap.String("channel", p.channel),
		zap.String("merchant_id", event.MerchantID),
		zap.String("fee_structure_id", event.FeeStructureID))
	return nil
}

func encode(event *AssignmentEvent, now time.Time) ([]byte, error) {
	event.EventType = EventFeeStructureAssigned
	event.Timestamp = now.Unix()

	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return payload, nil
}

// NoopPublisher drops events. It is used when no redis is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishAssignment(context.Context, *AssignmentEvent) error { return nil }
