package account

import "context"

// RepositoryStub keeps the last saved accounts list in memory for service tests.
type RepositoryStub struct {
	saved     []Account
	saveCalls int
}

func NewStubRepository() *RepositoryStub {
	return &RepositoryStub{}
}

func (s *RepositoryStub) Load(ctx context.Context) []Account {
	accounts := make([]Account, len(s.saved))
	copy(accounts, s.saved)
	return accounts
}

func (s *RepositoryStub) Save(ctx context.Context, accounts []Account) error {
	s.saved = make([]Account, len(accounts))
	copy(s.saved, accounts)
	s.saveCalls++
	return nil
}

func (s *RepositoryStub) SaveCalls() int {
	return s.saveCalls
}
