package account

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/wealthdesk/wealthdesk/internal/event_bus"
)

var ErrAccountNotFound = errors.New("account not found")

type Service interface {
	// List returns a read-only copy of the current accounts.
	List(ctx context.Context) []Account
	Add(ctx context.Context, account Account) Account
	// UpdateBalance replaces the balance of the account with the given id,
	// leaving every other field untouched.
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) (Account, error)
	// Delete removes the account with the given id. Deleting an unknown id
	// is a no-op.
	Delete(ctx context.Context, id int64) bool
}

type ServiceImpl struct {
	repo     Repository
	eventBus *event_bus.EventBus

	mu       sync.Mutex
	accounts []Account
	nextId   int64
}

func NewService(ctx context.Context, repo Repository, eventBus *event_bus.EventBus) *ServiceImpl {
	accounts := repo.Load(ctx)
	nextId := int64(1)
	for _, acc := range accounts {
		if acc.Id >= nextId {
			nextId = acc.Id + 1
		}
	}
	return &ServiceImpl{repo: repo, eventBus: eventBus, accounts: accounts, nextId: nextId}
}

func (s *ServiceImpl) List(ctx context.Context) []Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyAccounts()
}

func (s *ServiceImpl) Add(ctx context.Context, account Account) Account {
	s.mu.Lock()
	account.Id = s.nextId
	s.nextId++
	if _, ok := ParseType(string(account.Type)); !ok {
		account.Type = TypeOther
	}
	s.accounts = append(s.accounts, account)
	snapshot := s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(ctx, snapshot)
	return account
}

func (s *ServiceImpl) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) (Account, error) {
	s.mu.Lock()
	var updated Account
	found := false
	for i := range s.accounts {
		if s.accounts[i].Id == id {
			s.accounts[i].Balance = balance
			updated = s.accounts[i]
			found = true
			break
		}
	}
	var snapshot []Account
	if found {
		snapshot = s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if !found {
		return Account{}, ErrAccountNotFound
	}
	s.notify(ctx, snapshot)
	return updated, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int64) bool {
	s.mu.Lock()
	removed := false
	for i, acc := range s.accounts {
		if acc.Id == id {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			removed = true
			break
		}
	}
	var snapshot []Account
	if removed {
		snapshot = s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if removed {
		s.notify(ctx, snapshot)
	}
	return removed
}

// copyAccounts must be called with the mutex held.
func (s *ServiceImpl) copyAccounts() []Account {
	accounts := make([]Account, len(s.accounts))
	copy(accounts, s.accounts)
	return accounts
}

// persistLocked saves a copy of the current accounts and must be called with
// the mutex held, so snapshots reach the writer in mutation order. Save only
// marshals and enqueues; it never blocks on I/O.
func (s *ServiceImpl) persistLocked(ctx context.Context) []Account {
	snapshot := s.copyAccounts()
	if err := s.repo.Save(ctx, snapshot); err != nil {
		log.Errorf("failed to save accounts: %v", err)
	}
	return snapshot
}

func (s *ServiceImpl) notify(ctx context.Context, snapshot []Account) {
	err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.TopicAccountsChanged, event_bus.AccountsChanged{
		AccountCount: len(snapshot),
	}))
	if err != nil {
		log.Errorf("failed to publish accounts change event: %v", err)
	}
}
