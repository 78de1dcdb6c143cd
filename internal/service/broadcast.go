package service

import (
	"sync"

	"github.com/MKhiriev/go-catalog-keeper/models"
)

// snapshotHub fans one snapshot stream out to any number of subscribers.
// Each subscriber holds a buffered channel of size one; when a subscriber is
// slow the pending snapshot is replaced by the newer one, so a reader always
// wakes up to the latest state and never to a backlog.
type snapshotHub struct {
	mu     sync.Mutex
	subs   map[int]chan models.Snapshot
	nextID int
}

func newSnapshotHub() *snapshotHub {
	return &snapshotHub{subs: make(map[int]chan models.Snapshot)}
}

// subscribe registers a new subscriber and returns its channel together with
// an idempotent detach function.
func (h *snapshotHub) subscribe() (<-chan models.Snapshot, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan models.Snapshot, 1)
	h.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

// publish delivers snapshot to every subscriber, displacing an undelivered
// older snapshot if one is still pending.
func (h *snapshotHub) publish(snapshot models.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- snapshot:
			continue
		default:
		}

		// drop the stale pending snapshot, then queue the fresh one
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snapshot:
		default:
		}
	}
}
