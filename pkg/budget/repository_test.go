package budget

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthdesk/wealthdesk/internal/storage"
)

func TestRepositoryImpl_RoundTrip(t *testing.T) {
	t.Run("should load back the saved budget unchanged", func(t *testing.T) {
		// given
		store := storage.NewMemoryStore()
		writer := storage.NewWriter(store)
		repo := NewRepository(store, writer)
		saved := Budget{
			Income: []Entry{
				{Id: 1, Description: "Salary", Amount: decimal.RequireFromString("5000.50"), Category: "work"},
				{Id: 2, Description: "Dividends", Amount: decimal.RequireFromString("120.25")},
			},
			Expenses: []Entry{
				{Id: 3, Description: "Rent", Amount: decimal.NewFromInt(1500)},
			},
		}

		// when
		require.NoError(t, repo.Save(context.Background(), saved))
		writer.Close() // flush pending writes
		loaded := repo.Load(context.Background())

		// then
		require.Len(t, loaded.Income, 2)
		require.Len(t, loaded.Expenses, 1)
		assert.Equal(t, saved.Income[0].Id, loaded.Income[0].Id)
		assert.Equal(t, "Salary", loaded.Income[0].Description)
		assert.True(t, loaded.Income[0].Amount.Equal(decimal.RequireFromString("5000.50")))
		assert.Equal(t, "work", loaded.Income[0].Category)
		assert.Equal(t, "Dividends", loaded.Income[1].Description)
		assert.Equal(t, "Rent", loaded.Expenses[0].Description)
	})

	t.Run("should return an empty budget when nothing was saved", func(t *testing.T) {
		// given
		store := storage.NewMemoryStore()
		repo := NewRepository(store, storage.NewWriter(store))

		// when
		loaded := repo.Load(context.Background())

		// then
		assert.Empty(t, loaded.Income)
		assert.Empty(t, loaded.Expenses)
	})

	t.Run("should return an empty budget for a corrupt snapshot", func(t *testing.T) {
		// given
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(context.Background(), StorageKey, "{not json"))
		repo := NewRepository(store, storage.NewWriter(store))

		// when
		loaded := repo.Load(context.Background())

		// then
		assert.Empty(t, loaded.Income)
		assert.Empty(t, loaded.Expenses)
	})
}
