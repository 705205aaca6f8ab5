package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/wealthdesk/wealthdesk/internal/storage"
)

// StorageKey is the snapshot store key for the accounts collection.
const StorageKey = "accounts-data"

type Repository interface {
	Load(ctx context.Context) []Account
	Save(ctx context.Context, accounts []Account) error
}

type accountRecord struct {
	Id          int64           `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Institution string          `json:"institution,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
}

type RepositoryImpl struct {
	store  storage.Store
	writer *storage.Writer
}

func NewRepository(store storage.Store, writer *storage.Writer) *RepositoryImpl {
	return &RepositoryImpl{store: store, writer: writer}
}

func (r *RepositoryImpl) Load(ctx context.Context) []Account {
	value, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Debug("no saved accounts found, starting fresh")
		} else {
			log.Warnf("failed to load accounts snapshot, starting fresh: %v", err)
		}
		return nil
	}

	var records []accountRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		log.Warnf("corrupt accounts snapshot, starting fresh: %v", err)
		return nil
	}

	accounts := make([]Account, 0, len(records))
	for _, rec := range records {
		accountType, ok := ParseType(rec.Type)
		if !ok {
			accountType = TypeOther
		}
		accounts = append(accounts, Account{
			Id:          rec.Id,
			Name:        rec.Name,
			Type:        accountType,
			Institution: rec.Institution,
			Balance:     rec.Balance,
		})
	}
	return accounts
}

func (r *RepositoryImpl) Save(ctx context.Context, accounts []Account) error {
	records := make([]accountRecord, 0, len(accounts))
	for _, acc := range accounts {
		records = append(records, accountRecord{
			Id:          acc.Id,
			Name:        acc.Name,
			Type:        string(acc.Type),
			Institution: acc.Institution,
			Balance:     acc.Balance,
		})
	}
	value, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("could not encode accounts snapshot: %w", err)
	}
	r.writer.Enqueue(StorageKey, string(value))
	return nil
}
