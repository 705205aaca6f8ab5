package storage

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedStore blocks every Set until released and counts writes per key.
type gatedStore struct {
	*MemoryStore
	gate    chan struct{}
	entered chan struct{}

	mu     sync.Mutex
	writes map[string]int
}

func newGatedStore() *gatedStore {
	return &gatedStore{
		MemoryStore: NewMemoryStore(),
		gate:        make(chan struct{}),
		entered:     make(chan struct{}, 1),
		writes:      make(map[string]int),
	}
}

func (g *gatedStore) Set(ctx context.Context, key string, value string) error {
	select {
	case g.entered <- struct{}{}:
	default:
	}
	<-g.gate
	g.mu.Lock()
	g.writes[key]++
	g.mu.Unlock()
	return g.MemoryStore.Set(ctx, key, value)
}

func (g *gatedStore) writeCount(key string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.writes[key]
}

func TestWriter_Enqueue(t *testing.T) {
	t.Run("should write the last issued value for a key", func(t *testing.T) {
		// given
		store := NewMemoryStore()
		writer := NewWriter(store)

		// when
		writer.Enqueue("budget-data", `{"v":1}`)
		writer.Enqueue("budget-data", `{"v":2}`)
		writer.Enqueue("budget-data", `{"v":3}`)
		writer.Close()

		// then
		value, err := store.Get(context.Background(), "budget-data")
		require.NoError(t, err)
		assert.Equal(t, `{"v":3}`, value)
	})

	t.Run("should supersede a pending write with a newer one", func(t *testing.T) {
		// given: the writer is stuck on an unrelated key, so both portfolio
		// snapshots pile up in the pending slot
		store := newGatedStore()
		writer := NewWriter(store)
		writer.Enqueue("budget-data", "blocker")
		<-store.entered

		// when
		writer.Enqueue("portfolio-data", "stale")
		writer.Enqueue("portfolio-data", "fresh")
		close(store.gate)
		writer.Close()

		// then: the stale snapshot never reaches the store
		value, err := store.Get(context.Background(), "portfolio-data")
		require.NoError(t, err)
		assert.Equal(t, "fresh", value)
		assert.Equal(t, 1, store.writeCount("portfolio-data"))
	})

	t.Run("should keep keys independent", func(t *testing.T) {
		// given
		store := NewMemoryStore()
		writer := NewWriter(store)

		// when
		writer.Enqueue("budget-data", "b")
		writer.Enqueue("accounts-data", "a")
		writer.Close()

		// then
		budgetValue, err := store.Get(context.Background(), "budget-data")
		require.NoError(t, err)
		accountsValue, err := store.Get(context.Background(), "accounts-data")
		require.NoError(t, err)
		assert.Equal(t, "b", budgetValue)
		assert.Equal(t, "a", accountsValue)
	})

	t.Run("should drop failed writes without surfacing", func(t *testing.T) {
		// given
		store := NewMemoryStore()
		store.SetErr = errors.New("disk full")
		writer := NewWriter(store)

		// when
		writer.Enqueue("budget-data", "doomed")
		writer.Close()

		// then
		_, err := store.Get(context.Background(), "budget-data")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("should ignore writes after close", func(t *testing.T) {
		// given
		store := NewMemoryStore()
		writer := NewWriter(store)
		writer.Close()

		// when
		writer.Enqueue("budget-data", "late")

		// then
		_, err := store.Get(context.Background(), "budget-data")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
