package websocket

import (
	"testing"
	"time"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func (h *Hub) clientCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func registerTestClient(t *testing.T, hub *Hub, userID uuid.UUID, buffer int) *Client {
	t.Helper()
	client := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, buffer)}
	hub.register <- client
	require.Eventually(t, func() bool {
		return hub.clientCount(userID) == 1
	}, time.Second, 5*time.Millisecond)
	return client
}

func TestHubSendDeliversToLocalClient(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	userID := uuid.New()
	client := registerTestClient(t, hub, userID, 1)

	hub.Send(userID, entity.Notification{Title: "hello"})

	select {
	case msg := <-client.Send:
		assert.Contains(t, string(msg), "hello")
	case <-time.After(time.Second):
		t.Fatal("expected a delivered message")
	}
}

func TestHubSendIgnoresUnknownUser(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	hub.Send(uuid.New(), entity.Notification{Title: "nobody home"})
}

func TestHubSendFullBufferDropsClientWithoutPanic(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	userID := uuid.New()
	client := registerTestClient(t, hub, userID, 1)

	// First send fills the buffer; the client never drains it.
	hub.Send(userID, entity.Notification{Title: "first"})

	// Second send hits the full buffer. The slow client is unregistered and
	// its channel closed exactly once by the unregister handler.
	hub.Send(userID, entity.Notification{Title: "second"})

	require.Eventually(t, func() bool {
		return hub.clientCount(userID) == 0
	}, time.Second, 5*time.Millisecond)

	// The buffered message is still readable, then the channel reports closed.
	msg, ok := <-client.Send
	require.True(t, ok)
	assert.Contains(t, string(msg), "first")

	_, ok = <-client.Send
	assert.False(t, ok)

	// Further sends to the departed user are no-ops.
	hub.Send(userID, entity.Notification{Title: "third"})
}

func TestHubUnregisterKeepsOtherConnections(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	userID := uuid.New()
	first := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 1)}
	second := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 1)}
	hub.register <- first
	hub.register <- second
	require.Eventually(t, func() bool {
		return hub.clientCount(userID) == 2
	}, time.Second, 5*time.Millisecond)

	hub.unregister <- first
	require.Eventually(t, func() bool {
		return hub.clientCount(userID) == 1
	}, time.Second, 5*time.Millisecond)

	// The surviving connection still receives.
	hub.Send(userID, entity.Notification{Title: "still here"})
	select {
	case msg := <-second.Send:
		assert.Contains(t, string(msg), "still here")
	case <-time.After(time.Second):
		t.Fatal("expected delivery to the remaining connection")
	}
}
