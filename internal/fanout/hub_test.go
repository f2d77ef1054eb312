package fanout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHub_PublishToTenantGroup(t *testing.T) {
	hub := NewHub()

	ch := hub.Subscribe("tenant-a", "conn-1")
	err := hub.Publish("tenant-a", EventReceiveAlert, "hello")
	assert.NoError(t, err)

	select {
	case event := <-ch:
		assert.Equal(t, EventReceiveAlert, event.Name)
		assert.Equal(t, "hello", event.Payload)
		assert.False(t, event.Time.IsZero())
	case <-time.After(time.Second):
		t.Fatal("expected event was not delivered")
	}
}

func TestHub_TenantIsolation(t *testing.T) {
	hub := NewHub()

	chA := hub.Subscribe("tenant-a", "conn-1")
	chB := hub.Subscribe("tenant-b", "conn-2")

	assert.NoError(t, hub.Publish("tenant-a", EventAnalyticsUpdated, "payload"))

	select {
	case <-chA:
	case <-time.After(time.Second):
		t.Fatal("tenant-a subscriber did not receive the event")
	}
	select {
	case event := <-chB:
		t.Fatalf("tenant-b received tenant-a event: %v", event)
	default:
	}
}

func TestHub_PublishToEmptyGroupIsNoop(t *testing.T) {
	hub := NewHub()
	assert.NoError(t, hub.Publish("nobody-home", EventReceiveAlert, "payload"))
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()

	ch := hub.Subscribe("tenant-a", "conn-1")
	assert.Equal(t, 1, hub.SubscriberCount("tenant-a"))

	hub.Unsubscribe("tenant-a", "conn-1")
	assert.Equal(t, 0, hub.SubscriberCount("tenant-a"))

	_, open := <-ch
	assert.False(t, open)
}

func TestHub_ResubscribeReplacesChannel(t *testing.T) {
	hub := NewHub()

	old := hub.Subscribe("tenant-a", "conn-1")
	fresh := hub.Subscribe("tenant-a", "conn-1")
	assert.Equal(t, 1, hub.SubscriberCount("tenant-a"))

	_, open := <-old
	assert.False(t, open)

	assert.NoError(t, hub.Publish("tenant-a", EventReceiveAlert, "payload"))
	select {
	case event := <-fresh:
		assert.Equal(t, EventReceiveAlert, event.Name)
	case <-time.After(time.Second):
		t.Fatal("replacement channel did not receive the event")
	}
}

func TestHub_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := NewHub()
	hub.Subscribe("tenant-a", "conn-1")

	// Never drained; the buffer fills and further publishes must drop
	// instead of blocking.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			_ = hub.Publish("tenant-a", EventReceiveAlert, i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}
