package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const eventQueueKey = "report_status_events"

// ReportEvent is emitted whenever an authority changes a report's status.
type ReportEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	ReportID  int64     `json:"report_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher queues report events for asynchronous delivery.
type Publisher interface {
	Publish(ctx context.Context, event ReportEvent) error
}

// RedisPublisher is a Publisher backed by a Redis list.
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{redisClient: client}
}

// Publish pushes the event onto the Redis queue.
func (p *RedisPublisher) Publish(ctx context.Context, event ReportEvent) error {
	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal report event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish report event to Redis: %w", err)
	}
	return nil
}
