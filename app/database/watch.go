package database

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/lib/pq"
)

// notifyChannel is the Postgres NOTIFY channel the triggers publish on.
const notifyChannel = "record_changes"

// Change describes one row-level mutation delivered by the database.
type Change struct {
	Table  string `json:"table"`
	UserID string `json:"user_id"`
	Op     string `json:"op"`
}

// Watcher delivers row-change notifications to subscribers. It wraps a
// pq.Listener on the record_changes channel; subscribers receive a Change
// per mutated row and are expected to reload the affected collection (the
// notification carries no row data, only which table and owner changed).
type Watcher struct {
	listener *pq.Listener

	mu     sync.Mutex
	nextID int
	subs   map[int]chan Change
	closed bool
}

// NewWatcher connects a listener to the database at dsn and starts
// dispatching notifications. Callers must Close it when done.
func NewWatcher(dsn string) (*Watcher, error) {
	listener := pq.NewListener(dsn, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.Printf("Watch listener event %v: %v", ev, err)
		}
	})
	if err := listener.Listen(notifyChannel); err != nil {
		listener.Close()
		return nil, err
	}

	w := &Watcher{
		listener: listener,
		subs:     make(map[int]chan Change),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for n := range w.listener.Notify {
		// A nil notification signals reconnection; subscribers cannot
		// tell what changed in between, so nothing is dispatched and the
		// next real notification or scheduled sweep catches up.
		if n == nil {
			continue
		}
		change, err := parseChange(n.Extra)
		if err != nil {
			log.Printf("Ignoring malformed change notification %q: %v", n.Extra, err)
			continue
		}
		w.dispatch(change)
	}
}

func (w *Watcher) dispatch(change Change) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ch := range w.subs {
		// Non-blocking send: a slow subscriber drops the notification
		// rather than stalling the dispatch loop. Sweeps are idempotent,
		// so a dropped notification only delays a correction.
		select {
		case ch <- change:
		default:
		}
	}
}

// Subscribe registers a new subscriber and returns its channel together
// with a cancel function releasing it. The channel is closed on cancel.
func (w *Watcher) Subscribe() (<-chan Change, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	ch := make(chan Change, 16)
	w.subs[id] = ch

	cancel := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if sub, ok := w.subs[id]; ok {
			delete(w.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Close tears down the listener and all subscriber channels.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for id, ch := range w.subs {
		delete(w.subs, id)
		close(ch)
	}
	w.mu.Unlock()

	return w.listener.Close()
}

func parseChange(payload string) (Change, error) {
	var change Change
	err := json.Unmarshal([]byte(payload), &change)
	return change, err
}
