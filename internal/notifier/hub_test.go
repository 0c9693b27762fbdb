package notifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishWithoutClientsDoesNotBlock(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	for i := 0; i < 10; i++ {
		hub.Publish("work.uploaded", "success", "ok")
	}
	assert.Equal(t, 0, hub.ClientCount())
}

func TestEventsReachRegisteredClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newClient(hub, nil)
	hub.register <- client

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	hub.Publish("message.received", "info", "New message from Jess")

	select {
	case ev := <-client.send:
		assert.Equal(t, "message.received", ev.Event)
		assert.Equal(t, "info", ev.Kind)
		assert.Equal(t, "New message from Jess", ev.Message)
	case <-time.After(time.Second):
		t.Fatal("event never reached the client")
	}

	hub.unregister <- client
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 },
		time.Second, 10*time.Millisecond)
}
