// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feed

import (
	"context"
	"sync"
)

// Event names what changed, nothing more. Consumers must treat it as "go
// re-fetch"; it carries no row data.
type Event struct {
	Table string `json:"table"`
	Event string `json:"event"`
}

// VoteInserted is the event published after every successful vote write.
var VoteInserted = Event{Table: "votes", Event: "insert"}

// Feed broadcasts change notifications to subscribers.
type Feed interface {
	// Publish delivers ev to all current subscribers.
	Publish(ctx context.Context, ev Event) error
	// Subscribe returns a channel of events and a cancel function that
	// releases the subscription. The channel is closed on cancel.
	Subscribe(ctx context.Context) (<-chan Event, func())
}

// MemoryFeed is an in-process Feed for single-node deployments and tests.
type MemoryFeed struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

func NewMemoryFeed() *MemoryFeed {
	return &MemoryFeed{subs: make(map[int]chan Event)}
}

func (f *MemoryFeed) Publish(ctx context.Context, ev Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, sub := range f.subs {
		// Never block on a slow subscriber; a dropped event is harmless
		// because any later event triggers the same re-fetch.
		select {
		case sub <- ev:
		default:
		}
	}
	return nil
}

func (f *MemoryFeed) Subscribe(ctx context.Context) (<-chan Event, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.next
	f.next++
	ch := make(chan Event, 8)
	f.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, id)
			f.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}
