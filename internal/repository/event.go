package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/pokemonou-backend/internal/pursuit"
)

type EventRepository interface {
	Append(ctx context.Context, events []pursuit.Event) error
	Range(ctx context.Context, start, stop int64) ([]pursuit.Event, error)
	Len(ctx context.Context) (int64, error)
}

type dbEvent struct {
	client *redis.Client
	key    string
}

func NewEventRepository(client *redis.Client, prefix string) EventRepository {
	return &dbEvent{
		client: client,
		key:    prefix + ":log",
	}
}

func (that *dbEvent) Append(ctx context.Context, events []pursuit.Event) error {
	if len(events) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(events))
	for _, event := range events {
		eventJSON, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("could not marshal event %d: %w", event.Seq, err)
		}
		values = append(values, eventJSON)
	}

	if err := that.client.RPush(ctx, that.key, values...).Err(); err != nil {
		return fmt.Errorf("failed to push events: %w", err)
	}

	return nil
}

// Range follows LRANGE semantics: indices are inclusive and may be negative.
func (that *dbEvent) Range(ctx context.Context, start, stop int64) ([]pursuit.Event, error) {
	response, err := that.client.LRange(ctx, that.key, start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	events := make([]pursuit.Event, 0, len(response))
	for _, raw := range response {
		var event pursuit.Event
		if err = json.Unmarshal([]byte(raw), &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

func (that *dbEvent) Len(ctx context.Context) (int64, error) {
	n, err := that.client.LLen(ctx, that.key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}

	return n, nil
}
