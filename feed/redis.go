// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// channel is the redis pub/sub channel all change events go through.
const channel = "statepoll:changes"

// RedisFeed is a Feed backed by redis pub/sub, for deployments with more
// than one API node: a vote written on any node notifies subscribers on
// every node.
type RedisFeed struct {
	client *redis.Client
}

func NewRedisFeed(client *redis.Client) *RedisFeed {
	return &RedisFeed{client: client}
}

func (f *RedisFeed) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	if err := f.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

func (f *RedisFeed) Subscribe(ctx context.Context) (<-chan Event, func()) {
	sub := f.client.Subscribe(ctx, channel)
	ch := make(chan Event, 8)

	go func() {
		defer close(ch)
		for msg := range sub.Channel() {
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				slog.Warn("dropping undecodable feed message", "error", err)
				continue
			}
			select {
			case ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() {
		// Closing the PubSub ends the drain goroutine via channel close
		if err := sub.Close(); err != nil {
			slog.Warn("failed to close feed subscription", "error", err)
		}
	}

	return ch, cancel
}
