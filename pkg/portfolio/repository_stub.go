package portfolio

import "context"

// RepositoryStub keeps the last saved holdings list in memory for service tests.
type RepositoryStub struct {
	saved     []Holding
	saveCalls int
}

func NewStubRepository() *RepositoryStub {
	return &RepositoryStub{}
}

func (s *RepositoryStub) Load(ctx context.Context) []Holding {
	holdings := make([]Holding, len(s.saved))
	copy(holdings, s.saved)
	return holdings
}

func (s *RepositoryStub) Save(ctx context.Context, holdings []Holding) error {
	s.saved = make([]Holding, len(holdings))
	copy(s.saved, holdings)
	s.saveCalls++
	return nil
}

func (s *RepositoryStub) SaveCalls() int {
	return s.saveCalls
}
