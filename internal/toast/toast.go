// Package toast implements the shared error-reporting pipeline. Every
// backend failure, no matter which surface triggered it, funnels into one
// Manager: it classifies the error, keeps an ordered queue of active toasts
// that expire automatically, and tracks at most one toast promoted to a
// detail view. Selection and queue membership are independent: opening or
// closing the detail view never dismisses or re-adds a toast.
package toast

import (
	"context"
	"sync"
	"time"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

// DefaultTTL is how long a toast stays in the queue unless dismissed first.
const DefaultTTL = 10 * time.Second

// Item is one captured error. Details is nil when the triggering error was
// not a transport error.
type Item struct {
	ID        int64
	Message   string
	Details   *api.ErrorDetails
	CreatedAt time.Time
}

// Manager owns the toast queue. Ids come from a counter owned by the manager
// itself, are strictly increasing, and are never reused within its lifetime.
// Safe for concurrent use; expiry timers fire on their own goroutines.
type Manager struct {
	mu       sync.Mutex
	nextID   int64
	ttl      time.Duration
	items    []Item
	selected *Item
	timers   map[int64]*time.Timer
	log      logging.Logger
}

// NewManager builds a Manager. A non-positive ttl means DefaultTTL.
func NewManager(ttl time.Duration, log logging.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		ttl:    ttl,
		timers: map[int64]*time.Timer{},
		log:    log,
	}
}

// ShowError classifies err, appends a toast with a fresh id, and schedules
// its automatic removal. Fire-and-forget: the caller is never blocked beyond
// the append itself.
func (m *Manager) ShowError(err error) Item {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	item := Item{
		ID:        m.nextID,
		Message:   api.FormatMessage(err),
		Details:   api.Extract(err),
		CreatedAt: time.Now(),
	}
	m.items = append(m.items, item)
	m.timers[item.ID] = time.AfterFunc(m.ttl, func() { m.Dismiss(item.ID) })

	m.log.Debug(context.Background(), "toast raised", "id", item.ID, "message", item.Message)
	return item
}

// Dismiss removes the toast with the given id. Idempotent: manual dismissal
// and timer expiry race safely, whichever runs first wins and the other is a
// no-op.
func (m *Manager) Dismiss(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t, ok := m.timers[id]; ok {
		t.Stop()
		delete(m.timers, id)
	}
	for i, item := range m.items {
		if item.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return
		}
	}
}

// Active returns a snapshot of the queue in creation order.
func (m *Manager) Active() []Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// OpenDetail promotes a toast to the detail view. The toast's queue
// membership and expiry are unaffected.
func (m *Manager) OpenDetail(item Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	selected := item
	m.selected = &selected
}

// CloseDetail clears the detail view.
func (m *Manager) CloseDetail() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selected = nil
}

// Detail returns the currently selected toast, if any.
func (m *Manager) Detail() (Item, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.selected == nil {
		return Item{}, false
	}
	return *m.selected, true
}

// Close stops all pending expiry timers. The queue is left as-is.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, t := range m.timers {
		t.Stop()
		delete(m.timers, id)
	}
}
