package storage

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const writeTimeout = 5 * time.Second

// Writer decouples collection mutations from persistence I/O. Each key has a
// single pending slot: enqueueing a new snapshot for a key replaces any
// not-yet-written one, so the last issued snapshot is the one that reaches
// the store regardless of how fast mutations arrive.
//
// Failed writes are logged and dropped; the in-memory collections remain the
// source of truth for the session.
type Writer struct {
	store Store

	mu      sync.Mutex
	pending map[string]string
	closed  bool

	wake chan struct{}
	done chan struct{}
	wg   sync.WaitGroup
}

func NewWriter(store Store) *Writer {
	w := &Writer{
		store:   store,
		pending: make(map[string]string),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

// Enqueue schedules value to be written under key, superseding any pending
// write for the same key. It never blocks on I/O.
func (w *Writer) Enqueue(key string, value string) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		log.Warnf("snapshot writer closed, dropping write for %q", key)
		return
	}
	w.pending[key] = value
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Close stops the writer after flushing whatever is still pending.
func (w *Writer) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	w.wg.Wait()
}

func (w *Writer) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.wake:
			w.flush()
		case <-w.done:
			w.flush()
			return
		}
	}
}

func (w *Writer) flush() {
	w.mu.Lock()
	batch := w.pending
	w.pending = make(map[string]string)
	w.mu.Unlock()

	for key, value := range batch {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := w.store.Set(ctx, key, value); err != nil {
			log.Errorf("failed to persist snapshot %q: %v", key, err)
		}
		cancel()
	}
}
