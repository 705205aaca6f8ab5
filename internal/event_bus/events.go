package event_bus

// Topics published by the domain services after every successful mutation.
const (
	TopicBudgetChanged    EventType = "budget.changed"
	TopicPortfolioChanged EventType = "portfolio.changed"
	TopicAccountsChanged  EventType = "accounts.changed"
)

type BudgetChanged struct {
	IncomeCount  int
	ExpenseCount int
}

type PortfolioChanged struct {
	HoldingCount int
}

type AccountsChanged struct {
	AccountCount int
}
