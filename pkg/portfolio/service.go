package portfolio

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/wealthdesk/wealthdesk/internal/event_bus"
	"github.com/wealthdesk/wealthdesk/internal/utils"
	"github.com/wealthdesk/wealthdesk/pkg/screener"
)

var ErrInvalidShares = errors.New("share count must be positive")
var ErrHoldingNotFound = errors.New("holding not found")

type Service interface {
	// Snapshot returns a read-only copy of the current holdings.
	Snapshot(ctx context.Context) []Holding
	// Add creates a holding from a catalog security and a share count. The
	// security's price and yield are frozen into the holding; purchasePrice
	// equals the catalog price at this moment.
	Add(ctx context.Context, sec screener.Security, shares decimal.Decimal) (Holding, error)
	// Remove deletes the holding with the given id.
	Remove(ctx context.Context, id int64) bool
}

type ServiceImpl struct {
	repo     Repository
	eventBus *event_bus.EventBus
	clock    utils.Clock

	mu       sync.Mutex
	holdings []Holding
	nextId   int64
}

func NewService(ctx context.Context, repo Repository, eventBus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	holdings := repo.Load(ctx)
	nextId := int64(1)
	for _, h := range holdings {
		if h.Id >= nextId {
			nextId = h.Id + 1
		}
	}
	return &ServiceImpl{repo: repo, eventBus: eventBus, clock: clock, holdings: holdings, nextId: nextId}
}

func (s *ServiceImpl) Snapshot(ctx context.Context) []Holding {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyHoldings()
}

func (s *ServiceImpl) Add(ctx context.Context, sec screener.Security, shares decimal.Decimal) (Holding, error) {
	if shares.LessThanOrEqual(decimal.Zero) {
		return Holding{}, ErrInvalidShares
	}

	s.mu.Lock()
	holding := Holding{
		Id:            s.nextId,
		Ticker:        sec.Ticker,
		Name:          sec.Name,
		Yield:         sec.Yield,
		Price:         sec.Price,
		Frequency:     sec.Frequency,
		Sector:        sec.Sector,
		Shares:        shares,
		PurchasePrice: sec.Price,
		PurchaseDate:  s.clock.Now(),
	}
	s.nextId++
	s.holdings = append(s.holdings, holding)
	snapshot := s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(ctx, snapshot)
	return holding, nil
}

func (s *ServiceImpl) Remove(ctx context.Context, id int64) bool {
	s.mu.Lock()
	removed := false
	for i, h := range s.holdings {
		if h.Id == id {
			s.holdings = append(s.holdings[:i], s.holdings[i+1:]...)
			removed = true
			break
		}
	}
	var snapshot []Holding
	if removed {
		snapshot = s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if removed {
		s.notify(ctx, snapshot)
	}
	return removed
}

// copyHoldings must be called with the mutex held.
func (s *ServiceImpl) copyHoldings() []Holding {
	holdings := make([]Holding, len(s.holdings))
	copy(holdings, s.holdings)
	return holdings
}

// persistLocked saves a copy of the current holdings and must be called with
// the mutex held, so snapshots reach the writer in mutation order. Save only
// marshals and enqueues; it never blocks on I/O.
func (s *ServiceImpl) persistLocked(ctx context.Context) []Holding {
	snapshot := s.copyHoldings()
	if err := s.repo.Save(ctx, snapshot); err != nil {
		log.Errorf("failed to save portfolio: %v", err)
	}
	return snapshot
}

func (s *ServiceImpl) notify(ctx context.Context, snapshot []Holding) {
	err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.TopicPortfolioChanged, event_bus.PortfolioChanged{
		HoldingCount: len(snapshot),
	}))
	if err != nil {
		log.Errorf("failed to publish portfolio change event: %v", err)
	}
}
