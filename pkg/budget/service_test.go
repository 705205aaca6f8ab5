package budget

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthdesk/wealthdesk/internal/event_bus"
)

// recordingRepository captures the income size of every snapshot handed to
// persistence, in call order.
type recordingRepository struct {
	mu    sync.Mutex
	sizes []int
}

func (r *recordingRepository) Load(ctx context.Context) Budget {
	return Budget{}
}

func (r *recordingRepository) Save(ctx context.Context, budget Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sizes = append(r.sizes, len(budget.Income))
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

func newTestService(repo Repository) (*ServiceImpl, *event_bus.EventBus) {
	bus := event_bus.NewEventBus()
	return NewService(ctx, repo, bus), bus
}

func TestServiceImpl_AddIncome(t *testing.T) {
	t.Run("should append entries with unique ids in insertion order", func(t *testing.T) {
		// given
		repo := NewStubRepository()
		service, _ := newTestService(repo)

		// when
		first := service.AddIncome(ctx, Entry{Description: "Salary", Amount: decimal.NewFromInt(5000)})
		second := service.AddIncome(ctx, Entry{Description: "Side gig", Amount: decimal.NewFromInt(800)})

		// then
		snapshot := service.Snapshot(ctx)
		require.Len(t, snapshot.Income, 2)
		assert.Equal(t, "Salary", snapshot.Income[0].Description)
		assert.Equal(t, "Side gig", snapshot.Income[1].Description)
		assert.NotEqual(t, first.Id, second.Id)
		assert.Equal(t, first.Id+1, second.Id)
	})

	t.Run("should persist a snapshot on every mutation", func(t *testing.T) {
		// given
		repo := NewStubRepository()
		service, _ := newTestService(repo)

		// when
		service.AddIncome(ctx, Entry{Description: "Salary", Amount: decimal.NewFromInt(5000)})

		// then
		assert.Equal(t, 1, repo.SaveCalls())
		assert.Len(t, repo.Load(ctx).Income, 1)
	})

	t.Run("should hand snapshots to persistence in mutation order", func(t *testing.T) {
		// given
		repo := &recordingRepository{}
		service, _ := newTestService(repo)

		// when: overlapping mutations race to persist their snapshots
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				service.AddIncome(ctx, Entry{Description: "entry"})
			}()
		}
		wg.Wait()

		// then: no earlier snapshot is issued after a later one, so the last
		// one handed over holds every committed entry
		sizes := repo.SavedSizes()
		require.Len(t, sizes, 20)
		for i, size := range sizes {
			assert.Equal(t, i+1, size)
		}
	})

	t.Run("should publish a change event", func(t *testing.T) {
		// given
		repo := NewStubRepository()
		service, bus := newTestService(repo)
		var received event_bus.BudgetChanged
		unsub := event_bus.SubscribeTyped(bus, event_bus.TopicBudgetChanged,
			func(e event_bus.EventT[event_bus.BudgetChanged]) error {
				received = e.Data
				return nil
			})
		defer unsub()

		// when
		service.AddIncome(ctx, Entry{Description: "Salary"})

		// then
		assert.Equal(t, 1, received.IncomeCount)
		assert.Equal(t, 0, received.ExpenseCount)
	})
}

func TestServiceImpl_DeleteIncome(t *testing.T) {
	t.Run("should remove only the matching entry and preserve order", func(t *testing.T) {
		// given
		repo := NewStubRepository()
		service, _ := newTestService(repo)
		a := service.AddIncome(ctx, Entry{Description: "A", Amount: decimal.NewFromInt(1)})
		b := service.AddIncome(ctx, Entry{Description: "B", Amount: decimal.NewFromInt(2)})
		c := service.AddIncome(ctx, Entry{Description: "C", Amount: decimal.NewFromInt(3)})

		// when
		removed := service.DeleteIncome(ctx, b.Id)

		// then
		assert.True(t, removed)
		snapshot := service.Snapshot(ctx)
		require.Len(t, snapshot.Income, 2)
		assert.Equal(t, a.Id, snapshot.Income[0].Id)
		assert.Equal(t, c.Id, snapshot.Income[1].Id)
	})

	t.Run("should be a no-op for an unknown id", func(t *testing.T) {
		// given
		repo := NewStubRepository()
		service, _ := newTestService(repo)
		service.AddIncome(ctx, Entry{Description: "A"})
		savesBefore := repo.SaveCalls()

		// when
		removed := service.DeleteIncome(ctx, 9999)

		// then
		assert.False(t, removed)
		assert.Len(t, service.Snapshot(ctx).Income, 1)
		assert.Equal(t, savesBefore, repo.SaveCalls())
	})
}

func TestServiceImpl_AddExpense(t *testing.T) {
	t.Run("should keep income and expense lists disjoint", func(t *testing.T) {
		// given
		repo := NewStubRepository()
		service, _ := newTestService(repo)

		// when
		service.AddIncome(ctx, Entry{Description: "Salary"})
		expense := service.AddExpense(ctx, Entry{Description: "Rent", Amount: decimal.NewFromInt(1500)})

		// then
		snapshot := service.Snapshot(ctx)
		assert.Len(t, snapshot.Income, 1)
		require.Len(t, snapshot.Expenses, 1)
		assert.Equal(t, expense.Id, snapshot.Expenses[0].Id)
	})

	t.Run("should delete expense without touching income", func(t *testing.T) {
		// given
		repo := NewStubRepository()
		service, _ := newTestService(repo)
		service.AddIncome(ctx, Entry{Description: "Salary"})
		expense := service.AddExpense(ctx, Entry{Description: "Rent"})

		// when
		removed := service.DeleteExpense(ctx, expense.Id)

		// then
		assert.True(t, removed)
		snapshot := service.Snapshot(ctx)
		assert.Len(t, snapshot.Income, 1)
		assert.Empty(t, snapshot.Expenses)
	})
}

func TestNewService(t *testing.T) {
	t.Run("should seed id counter past the highest persisted id", func(t *testing.T) {
		// given
		repo := NewStubRepository()
		require.NoError(t, repo.Save(ctx, Budget{
			Income:   []Entry{{Id: 17, Description: "Salary"}},
			Expenses: []Entry{{Id: 41, Description: "Rent"}},
		}))

		// when
		service, _ := newTestService(repo)
		entry := service.AddIncome(ctx, Entry{Description: "Bonus"})

		// then
		assert.Equal(t, int64(42), entry.Id)
	})

	t.Run("should start empty when nothing was persisted", func(t *testing.T) {
		// given
		repo := NewStubRepository()

		// when
		service, _ := newTestService(repo)

		// then
		snapshot := service.Snapshot(ctx)
		assert.Empty(t, snapshot.Income)
		assert.Empty(t, snapshot.Expenses)
	})
}

func TestServiceImpl_Snapshot(t *testing.T) {
	t.Run("should return a copy isolated from later mutations", func(t *testing.T) {
		// given
		repo := NewStubRepository()
		service, _ := newTestService(repo)
		service.AddIncome(ctx, Entry{Description: "Salary"})

		// when
		before := service.Snapshot(ctx)
		service.AddIncome(ctx, Entry{Description: "Bonus"})

		// then
		assert.Len(t, before.Income, 1)
		assert.Len(t, service.Snapshot(ctx).Income, 2)
	})
}
