package budget

import "context"

// RepositoryStub keeps the last saved budget in memory for service tests.
type RepositoryStub struct {
	saved     Budget
	saveCalls int
}

func NewStubRepository() *RepositoryStub {
	return &RepositoryStub{}
}

func (s *RepositoryStub) Load(ctx context.Context) Budget {
	return s.saved.Copy()
}

func (s *RepositoryStub) Save(ctx context.Context, budget Budget) error {
	s.saved = budget.Copy()
	s.saveCalls++
	return nil
}

func (s *RepositoryStub) SaveCalls() int {
	return s.saveCalls
}
