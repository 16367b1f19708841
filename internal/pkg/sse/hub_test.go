package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishToSubscriber(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-1", Event{UserID: "user-1", Event: EventStandupSubmitted, Data: "payload"})

	select {
	case event := <-ch:
		assert.Equal(t, EventStandupSubmitted, event.Event)
		assert.Equal(t, "payload", event.Data)
	default:
		t.Fatal("expected buffered event")
	}
}

func TestHub_PublishToOtherUserNotDelivered(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-2", Event{UserID: "user-2", Event: EventLeaveReviewed})

	select {
	case <-ch:
		t.Fatal("event should not reach another user's channel")
	default:
	}
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	require.Equal(t, 1, hub.SubscriberCount("user-1"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("user-1"))

	// Publishing after cleanup must not panic
	hub.Publish("user-1", Event{UserID: "user-1", Event: EventStandupSubmitted})
}

func TestHub_FullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	for i := 0; i < cap(ch)+5; i++ {
		hub.Publish("user-1", Event{UserID: "user-1", Event: EventStandupSubmitted})
	}

	assert.Len(t, ch, cap(ch))
}
