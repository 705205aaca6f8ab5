package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/wealthdesk/wealthdesk/internal/storage"
	"github.com/wealthdesk/wealthdesk/pkg/screener"
)

// StorageKey is the snapshot store key for the portfolio collection.
const StorageKey = "portfolio-data"

type Repository interface {
	Load(ctx context.Context) []Holding
	Save(ctx context.Context, holdings []Holding) error
}

type holdingRecord struct {
	Id            int64           `json:"id"`
	Ticker        string          `json:"ticker"`
	Name          string          `json:"name"`
	Yield         decimal.Decimal `json:"yield"`
	Price         decimal.Decimal `json:"price"`
	Frequency     string          `json:"frequency"`
	Sector        string          `json:"sector"`
	Shares        decimal.Decimal `json:"shares"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	PurchaseDate  time.Time       `json:"purchaseDate"`
}

type RepositoryImpl struct {
	store  storage.Store
	writer *storage.Writer
}

func NewRepository(store storage.Store, writer *storage.Writer) *RepositoryImpl {
	return &RepositoryImpl{store: store, writer: writer}
}

func (r *RepositoryImpl) Load(ctx context.Context) []Holding {
	value, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Debug("no saved portfolio found, starting fresh")
		} else {
			log.Warnf("failed to load portfolio snapshot, starting fresh: %v", err)
		}
		return nil
	}

	var records []holdingRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		log.Warnf("corrupt portfolio snapshot, starting fresh: %v", err)
		return nil
	}

	holdings := make([]Holding, 0, len(records))
	for _, rec := range records {
		holdings = append(holdings, Holding{
			Id:            rec.Id,
			Ticker:        rec.Ticker,
			Name:          rec.Name,
			Yield:         rec.Yield,
			Price:         rec.Price,
			Frequency:     screener.Frequency(rec.Frequency),
			Sector:        rec.Sector,
			Shares:        rec.Shares,
			PurchasePrice: rec.PurchasePrice,
			PurchaseDate:  rec.PurchaseDate,
		})
	}
	return holdings
}

func (r *RepositoryImpl) Save(ctx context.Context, holdings []Holding) error {
	records := make([]holdingRecord, 0, len(holdings))
	for _, h := range holdings {
		records = append(records, holdingRecord{
			Id:            h.Id,
			Ticker:        h.Ticker,
			Name:          h.Name,
			Yield:         h.Yield,
			Price:         h.Price,
			Frequency:     string(h.Frequency),
			Sector:        h.Sector,
			Shares:        h.Shares,
			PurchasePrice: h.PurchasePrice,
			PurchaseDate:  h.PurchaseDate,
		})
	}
	value, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("could not encode portfolio snapshot: %w", err)
	}
	r.writer.Enqueue(StorageKey, string(value))
	return nil
}
