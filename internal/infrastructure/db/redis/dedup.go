package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Providers redeliver webhooks for up to three days.
const dedupTTL = 72 * time.Hour

// DedupChecker remembers handled payment events in Redis.
// Key format: dedup:payment_event:<event_id>
type DedupChecker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client, ttl: dedupTTL}
}

// IsDuplicate reports whether this event id has already been handled.
func (d *DedupChecker) IsDuplicate(ctx context.Context, eventID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(eventID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this event has been handled (expires after the TTL).
func (d *DedupChecker) Mark(ctx context.Context, eventID string) error {
	if err := d.client.Set(ctx, d.key(eventID), "1", d.ttl).Err(); err != nil {
		return fmt.Errorf("dedup mark: %w", err)
	}
	return nil
}

func (d *DedupChecker) key(eventID string) string {
	return "dedup:payment_event:" + eventID
}
