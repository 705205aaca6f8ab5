package account

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthdesk/wealthdesk/internal/event_bus"
)

// recordingRepository captures the size of every snapshot handed to
// persistence, in call order.
type recordingRepository struct {
	mu    sync.Mutex
	sizes []int
}

func (r *recordingRepository) Load(ctx context.Context) []Account {
	return nil
}

func (r *recordingRepository) Save(ctx context.Context, accounts []Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sizes = append(r.sizes, len(accounts))
	return nil
}

func (r *recordingRepository) SavedSizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	sizes := make([]int, len(r.sizes))
	copy(sizes, r.sizes)
	return sizes
}

var ctx = context.Background()

func newTestService(repo Repository) *ServiceImpl {
	return NewService(ctx, repo, event_bus.NewEventBus())
}

func TestServiceImpl_Add(t *testing.T) {
	t.Run("should append accounts with unique ids", func(t *testing.T) {
		// given
		repo := NewStubRepository()
		service := newTestService(repo)

		// when
		first := service.Add(ctx, Account{Name: "Chase Checking", Type: TypeChecking, Balance: decimal.NewFromInt(2500)})
		second := service.Add(ctx, Account{Name: "Ally Savings", Type: TypeSavings, Institution: "Ally"})

		// then
		accounts := service.List(ctx)
		require.Len(t, accounts, 2)
		assert.NotEqual(t, first.Id, second.Id)
		assert.Equal(t, "Chase Checking", accounts[0].Name)
		assert.Equal(t, "Ally", accounts[1].Institution)
		assert.Equal(t, 2, repo.SaveCalls())
	})

	t.Run("should hand snapshots to persistence in mutation order", func(t *testing.T) {
		// given
		repo := &recordingRepository{}
		service := newTestService(repo)

		// when
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				service.Add(ctx, Account{Name: "Checking", Type: TypeChecking})
			}()
		}
		wg.Wait()

		// then
		sizes := repo.SavedSizes()
		require.Len(t, sizes, 20)
		for i, size := range sizes {
			assert.Equal(t, i+1, size)
		}
	})

	t.Run("should coerce an unknown type to other", func(t *testing.T) {
		// given
		repo := NewStubRepository()
		service := newTestService(repo)

		// when
		account := service.Add(ctx, Account{Name: "Mystery", Type: Type("crypto")})

		// then
		assert.Equal(t, TypeOther, account.Type)
	})
}

func TestServiceImpl_UpdateBalance(t *testing.T) {
	t.Run("should replace only the balance of the matching account", func(t *testing.T) {
		// given
		repo := NewStubRepository()
		service := newTestService(repo)
		first := service.Add(ctx, Account{Name: "Checking", Type: TypeChecking, Institution: "Chase", Balance: decimal.NewFromInt(100)})
		second := service.Add(ctx, Account{Name: "Savings", Type: TypeSavings, Balance: decimal.NewFromInt(9000)})

		// when
		updated, err := service.UpdateBalance(ctx, first.Id, decimal.RequireFromString("1234.56"))

		// then
		require.NoError(t, err)
		assert.True(t, updated.Balance.Equal(decimal.RequireFromString("1234.56")))
		assert.Equal(t, "Checking", updated.Name)
		assert.Equal(t, "Chase", updated.Institution)

		accounts := service.List(ctx)
		assert.True(t, accounts[0].Balance.Equal(decimal.RequireFromString("1234.56")))
		assert.Equal(t, second.Id, accounts[1].Id)
		assert.True(t, accounts[1].Balance.Equal(decimal.NewFromInt(9000)))
	})

	t.Run("should return error for an unknown account", func(t *testing.T) {
		// given
		repo := NewStubRepository()
		service := newTestService(repo)

		// when
		_, err := service.UpdateBalance(ctx, 404, decimal.NewFromInt(1))

		// then
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestServiceImpl_Delete(t *testing.T) {
	t.Run("should remove only the matching account", func(t *testing.T) {
		// given
		repo := NewStubRepository()
		service := newTestService(repo)
		first := service.Add(ctx, Account{Name: "A", Type: TypeChecking})
		second := service.Add(ctx, Account{Name: "B", Type: TypeSavings})

		// when
		removed := service.Delete(ctx, first.Id)

		// then
		assert.True(t, removed)
		accounts := service.List(ctx)
		require.Len(t, accounts, 1)
		assert.Equal(t, second.Id, accounts[0].Id)
	})

	t.Run("should be a no-op for an unknown id", func(t *testing.T) {
		// given
		repo := NewStubRepository()
		service := newTestService(repo)
		service.Add(ctx, Account{Name: "A", Type: TypeChecking})
		savesBefore := repo.SaveCalls()

		// when
		removed := service.Delete(ctx, 404)

		// then
		assert.False(t, removed)
		assert.Len(t, service.List(ctx), 1)
		assert.Equal(t, savesBefore, repo.SaveCalls())
	})
}

func TestNewService(t *testing.T) {
	t.Run("should seed id counter past the highest persisted id", func(t *testing.T) {
		// given
		repo := NewStubRepository()
		require.NoError(t, repo.Save(ctx, []Account{{Id: 7, Name: "Old", Type: TypeChecking}}))

		// when
		service := newTestService(repo)
		account := service.Add(ctx, Account{Name: "New", Type: TypeSavings})

		// then
		assert.Equal(t, int64(8), account.Id)
	})
}

func TestParseType(t *testing.T) {
	t.Run("should accept every known type", func(t *testing.T) {
		for _, value := range []string{"checking", "savings", "investment", "credit", "loan", "other"} {
			_, ok := ParseType(value)
			assert.True(t, ok, value)
		}
	})

	t.Run("should reject unknown types", func(t *testing.T) {
		_, ok := ParseType("crypto")
		assert.False(t, ok)
	})
}
