package budget

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/wealthdesk/wealthdesk/internal/storage"
)

// StorageKey is the snapshot store key for the budget collection.
const StorageKey = "budget-data"

type Repository interface {
	// Load fetches the last persisted budget. A missing or unreadable
	// snapshot yields an empty budget, never an error: it is the
	// "no data yet" state.
	Load(ctx context.Context) Budget
	// Save schedules the snapshot for persistence. Write failures are
	// logged downstream and never surfaced.
	Save(ctx context.Context, budget Budget) error
}

type entryRecord struct {
	Id          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
}

type budgetSnapshot struct {
	Income   []entryRecord `json:"income"`
	Expenses []entryRecord `json:"expenses"`
}

type RepositoryImpl struct {
	store  storage.Store
	writer *storage.Writer
}

func NewRepository(store storage.Store, writer *storage.Writer) *RepositoryImpl {
	return &RepositoryImpl{store: store, writer: writer}
}

func (r *RepositoryImpl) Load(ctx context.Context) Budget {
	value, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Debug("no saved budget found, starting fresh")
		} else {
			log.Warnf("failed to load budget snapshot, starting fresh: %v", err)
		}
		return Budget{}
	}

	var snapshot budgetSnapshot
	if err := json.Unmarshal([]byte(value), &snapshot); err != nil {
		log.Warnf("corrupt budget snapshot, starting fresh: %v", err)
		return Budget{}
	}

	return Budget{
		Income:   entriesFromRecords(snapshot.Income),
		Expenses: entriesFromRecords(snapshot.Expenses),
	}
}

func (r *RepositoryImpl) Save(ctx context.Context, budget Budget) error {
	snapshot := budgetSnapshot{
		Income:   recordsFromEntries(budget.Income),
		Expenses: recordsFromEntries(budget.Expenses),
	}
	value, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not encode budget snapshot: %w", err)
	}
	r.writer.Enqueue(StorageKey, string(value))
	return nil
}

func entriesFromRecords(records []entryRecord) []Entry {
	if len(records) == 0 {
		return nil
	}
	entries := make([]Entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, Entry{
			Id:          rec.Id,
			Description: rec.Description,
			Amount:      rec.Amount,
			Category:    rec.Category,
		})
	}
	return entries
}

func recordsFromEntries(entries []Entry) []entryRecord {
	records := make([]entryRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, entryRecord{
			Id:          entry.Id,
			Description: entry.Description,
			Amount:      entry.Amount,
			Category:    entry.Category,
		})
	}
	return records
}
