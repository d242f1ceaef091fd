package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHubSubscribePublish(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-1", Event{Name: "leave_application.approved", Data: "app-1"})

	select {
	case ev := <-ch:
		assert.Equal(t, "leave_application.approved", ev.Name)
		assert.Equal(t, "app-1", ev.Data)
	default:
		t.Fatal("expected buffered event on subscriber channel")
	}
}

func TestHubPublishToOtherUserNotDelivered(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-2", Event{Name: "noise"})

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event delivered: %v", ev)
	default:
	}
}

func TestHubCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	assert.Equal(t, 1, hub.SubscriberCount("user-1"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("user-1"))
}

func TestHubFullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	// Channel buffer is 10; publishing more must not deadlock.
	for i := 0; i < 20; i++ {
		hub.Publish("user-1", Event{Name: "warranty.expiring"})
	}
}
