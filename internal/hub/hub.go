// Package hub maintains the push channel for real-time notifications.
//
// The backend exposes a websocket endpoint at /hubs/notifications that pushes
// one kind of event: a full notification record. Subscriber owns its own
// reconnect loop with a fixed retry interval and exposes only a
// connected/disconnected boolean and an inbound-message sink. Closing the
// subscriber stops any pending reconnect attempt and is safe to call more
// than once.
package hub

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

// Path is the hub endpoint relative to the backend root.
const Path = "/hubs/notifications"

// URLFor derives the websocket URL of the hub from an http(s) base URL.
func URLFor(baseURL string) string {
	u := strings.TrimRight(baseURL, "/")
	u = strings.Replace(u, "https://", "wss://", 1)
	u = strings.Replace(u, "http://", "ws://", 1)
	return u + Path
}

// Subscriber is a long-lived hub connection. The sink is invoked from the
// read loop for every inbound record and must not block; hand the record off
// and return.
type Subscriber struct {
	url  string
	sink func(api.Notification)
	log  logging.Logger

	// RetryInterval is the pause between reconnect attempts. Set before
	// Start; defaults to 3 seconds.
	RetryInterval time.Duration

	mu        sync.Mutex
	connected bool

	cancel    context.CancelFunc
	done      chan struct{}
	startOnce sync.Once
	closeOnce sync.Once
}

func New(url string, sink func(api.Notification), log logging.Logger) *Subscriber {
	return &Subscriber{
		url:           url,
		sink:          sink,
		log:           log,
		RetryInterval: 3 * time.Second,
		done:          make(chan struct{}),
	}
}

// Start launches the connection loop in the background. Subsequent calls are
// no-ops.
func (s *Subscriber) Start() {
	s.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		s.cancel = cancel
		go s.run(ctx)
	})
}

// Connected reports whether a hub connection is currently established.
func (s *Subscriber) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// Close tears the subscription down: the current connection is dropped and no
// further reconnects are attempted. Idempotent.
func (s *Subscriber) Close() {
	s.closeOnce.Do(func() {
		if s.cancel != nil {
			s.cancel()
			<-s.done
		} else {
			close(s.done)
		}
	})
}

func (s *Subscriber) run(ctx context.Context) {
	defer close(s.done)
	for {
		s.serveConn(ctx)
		s.setConnected(false)

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.RetryInterval):
		}
	}
}

// serveConn dials once and pumps messages until the connection drops or the
// context is cancelled.
func (s *Subscriber) serveConn(ctx context.Context) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.url, nil)
	if err != nil {
		s.log.Warn(ctx, "hub connection failed", "url", s.url, "error", err)
		return
	}
	defer conn.Close()

	s.setConnected(true)
	s.log.Info(ctx, "hub connected", "url", s.url)

	// Unblock ReadJSON when the subscriber is closed.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	for {
		var n api.Notification
		if err := conn.ReadJSON(&n); err != nil {
			if ctx.Err() == nil {
				s.log.Warn(ctx, "hub connection dropped", "error", err)
			}
			return
		}
		s.sink(n)
	}
}

func (s *Subscriber) setConnected(v bool) {
	s.mu.Lock()
	s.connected = v
	s.mu.Unlock()
}
