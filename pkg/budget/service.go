package budget

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/wealthdesk/wealthdesk/internal/event_bus"
)

type Service interface {
	// Snapshot returns a read-only copy of the current budget.
	Snapshot(ctx context.Context) Budget
	AddIncome(ctx context.Context, entry Entry) Entry
	AddExpense(ctx context.Context, entry Entry) Entry
	// DeleteIncome removes the entry with the given id. It reports whether
	// an entry was removed; deleting an unknown id is a no-op.
	DeleteIncome(ctx context.Context, id int64) bool
	DeleteExpense(ctx context.Context, id int64) bool
}

// ServiceImpl owns the in-memory budget under a single-writer mutex. Ids come
// from a monotonic counter seeded past the highest persisted id, so rapid
// successive inserts can never collide.
type ServiceImpl struct {
	repo     Repository
	eventBus *event_bus.EventBus

	mu     sync.Mutex
	budget Budget
	nextId int64
}

// NewService loads the persisted budget (empty when nothing was saved yet)
// and seeds the id counter.
func NewService(ctx context.Context, repo Repository, eventBus *event_bus.EventBus) *ServiceImpl {
	budget := repo.Load(ctx)
	nextId := int64(1)
	for _, entry := range budget.Income {
		if entry.Id >= nextId {
			nextId = entry.Id + 1
		}
	}
	for _, entry := range budget.Expenses {
		if entry.Id >= nextId {
			nextId = entry.Id + 1
		}
	}
	return &ServiceImpl{repo: repo, eventBus: eventBus, budget: budget, nextId: nextId}
}

func (s *ServiceImpl) Snapshot(ctx context.Context) Budget {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budget.Copy()
}

func (s *ServiceImpl) AddIncome(ctx context.Context, entry Entry) Entry {
	s.mu.Lock()
	entry.Id = s.nextId
	s.nextId++
	s.budget.Income = append(s.budget.Income, entry)
	snapshot := s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(ctx, snapshot)
	return entry
}

func (s *ServiceImpl) AddExpense(ctx context.Context, entry Entry) Entry {
	s.mu.Lock()
	entry.Id = s.nextId
	s.nextId++
	s.budget.Expenses = append(s.budget.Expenses, entry)
	snapshot := s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(ctx, snapshot)
	return entry
}

func (s *ServiceImpl) DeleteIncome(ctx context.Context, id int64) bool {
	s.mu.Lock()
	entries, removed := removeEntry(s.budget.Income, id)
	s.budget.Income = entries
	var snapshot Budget
	if removed {
		snapshot = s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if removed {
		s.notify(ctx, snapshot)
	}
	return removed
}

func (s *ServiceImpl) DeleteExpense(ctx context.Context, id int64) bool {
	s.mu.Lock()
	entries, removed := removeEntry(s.budget.Expenses, id)
	s.budget.Expenses = entries
	var snapshot Budget
	if removed {
		snapshot = s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if removed {
		s.notify(ctx, snapshot)
	}
	return removed
}

// persistLocked saves a copy of the current budget and must be called with
// the mutex held, so snapshots reach the writer in mutation order. Save only
// marshals and enqueues; it never blocks on I/O.
func (s *ServiceImpl) persistLocked(ctx context.Context) Budget {
	snapshot := s.budget.Copy()
	if err := s.repo.Save(ctx, snapshot); err != nil {
		log.Errorf("failed to save budget: %v", err)
	}
	return snapshot
}

func (s *ServiceImpl) notify(ctx context.Context, snapshot Budget) {
	err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.TopicBudgetChanged, event_bus.BudgetChanged{
		IncomeCount:  len(snapshot.Income),
		ExpenseCount: len(snapshot.Expenses),
	}))
	if err != nil {
		log.Errorf("failed to publish budget change event: %v", err)
	}
}

func removeEntry(entries []Entry, id int64) ([]Entry, bool) {
	for i, entry := range entries {
		if entry.Id == id {
			return append(entries[:i], entries[i+1:]...), true
		}
	}
	return entries, false
}
