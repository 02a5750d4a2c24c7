package hub

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

var upgrader = websocket.Upgrader{}

func TestURLFor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://backend.example.com", "wss://backend.example.com/hubs/notifications"},
		{"http://127.0.0.1:5000/", "ws://127.0.0.1:5000/hubs/notifications"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, URLFor(tc.in))
	}
}

func TestSubscriber_DeliversNotifications(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.WriteJSON(api.Notification{VehicleID: 7, Title: "Low fuel"})
		// Keep the connection open so the subscriber stays connected.
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	received := make(chan api.Notification, 1)
	s := New(URLFor(srv.URL), func(n api.Notification) { received <- n }, logging.NewDefault("error"))
	s.RetryInterval = 20 * time.Millisecond
	s.Start()
	defer s.Close()

	select {
	case n := <-received:
		assert.Equal(t, int64(7), n.VehicleID)
		assert.Equal(t, "Low fuel", n.Title)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
	}

	assert.Eventually(t, s.Connected, time.Second, 10*time.Millisecond)
}

func TestSubscriber_ReconnectsAfterDrop(t *testing.T) {
	var conns atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		if conns.Add(1) == 1 {
			// Drop the first connection immediately to force a reconnect.
			conn.Close()
			return
		}
		defer conn.Close()
		_ = conn.WriteJSON(api.Notification{VehicleID: 9})
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	received := make(chan api.Notification, 1)
	s := New(URLFor(srv.URL), func(n api.Notification) { received <- n }, logging.NewDefault("error"))
	s.RetryInterval = 20 * time.Millisecond
	s.Start()
	defer s.Close()

	select {
	case n := <-received:
		assert.Equal(t, int64(9), n.VehicleID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reconnect delivery")
	}
	assert.GreaterOrEqual(t, conns.Load(), int32(2))
}

func TestSubscriber_CloseIsIdempotentAndStopsReconnects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	s := New(URLFor(srv.URL), func(api.Notification) {}, logging.NewDefault("error"))
	s.RetryInterval = 20 * time.Millisecond
	s.Start()

	require.Eventually(t, s.Connected, time.Second, 10*time.Millisecond)

	s.Close()
	s.Close()
	assert.False(t, s.Connected())
}

func TestSubscriber_CloseWithoutStart(t *testing.T) {
	s := New("ws://127.0.0.1:1/hubs/notifications", func(api.Notification) {}, logging.NewDefault("error"))
	s.Close()
	s.Close()
}
