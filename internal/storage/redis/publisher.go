package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// EventChannel is the pub/sub channel carrying collection change events.
const EventChannel = "portfolio:events"

// Publisher sends JSON-encoded events to EventChannel so other processes
// sharing the same redis can notice writes they did not make.
type Publisher struct {
	client  *redis.Client
	channel string
}

func NewPublisher(client *redis.Client, prefix string) *Publisher {
	return &Publisher{client: client, channel: prefix + EventChannel}
}

func (p *Publisher) Channel() string { return p.channel }

func (p *Publisher) Publish(ctx context.Context, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Subscribe delivers every payload published on the channel to handle until
// ctx is cancelled.
func (p *Publisher) Subscribe(ctx context.Context, handle func(payload []byte)) error {
	sub := p.client.Subscribe(ctx, p.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", p.channel, err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			handle([]byte(msg.Payload))
		}
	}
}
