// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feed

import (
	"context"
	"testing"
	"time"
)

func TestMemoryFeed_PublishSubscribe(t *testing.T) {
	f := NewMemoryFeed()
	ctx := context.Background()

	events, cancel := f.Subscribe(ctx)
	defer cancel()

	if err := f.Publish(ctx, VoteInserted); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	select {
	case ev := <-events:
		if ev.Table != "votes" || ev.Event != "insert" {
			t.Errorf("got event %+v, want votes/insert", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestMemoryFeed_MultipleSubscribers(t *testing.T) {
	f := NewMemoryFeed()
	ctx := context.Background()

	ch1, cancel1 := f.Subscribe(ctx)
	defer cancel1()
	ch2, cancel2 := f.Subscribe(ctx)
	defer cancel2()

	if err := f.Publish(ctx, VoteInserted); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	for i, ch := range []<-chan Event{ch1, ch2} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d never received the event", i+1)
		}
	}
}

func TestMemoryFeed_CancelStopsDelivery(t *testing.T) {
	f := NewMemoryFeed()
	ctx := context.Background()

	events, cancel := f.Subscribe(ctx)
	cancel()

	// Channel is closed after cancel
	if _, ok := <-events; ok {
		t.Error("expected closed channel after cancel")
	}

	// Publishing to a feed with no subscribers must not panic or block
	if err := f.Publish(ctx, VoteInserted); err != nil {
		t.Errorf("Publish() after cancel error = %v", err)
	}

	// Cancel is idempotent
	cancel()
}

func TestMemoryFeed_SlowSubscriberNeverBlocksPublish(t *testing.T) {
	f := NewMemoryFeed()
	ctx := context.Background()

	_, cancel := f.Subscribe(ctx) // never drained
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			f.Publish(ctx, VoteInserted)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}
}
