package dashboard

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/wealthdesk/wealthdesk/internal/event_bus"
	"github.com/wealthdesk/wealthdesk/pkg/account"
	"github.com/wealthdesk/wealthdesk/pkg/budget"
	"github.com/wealthdesk/wealthdesk/pkg/portfolio"
)

// topHoldingsLimit bounds the holdings preview on the dashboard.
const topHoldingsLimit = 5

var twelve = decimal.NewFromInt(12)

type Service interface {
	// Summary recomputes all derived metrics from the current snapshots.
	Summary(ctx context.Context) Summary
}

type ServiceImpl struct {
	budgetService    budget.Service
	portfolioService portfolio.Service
	accountService   account.Service

	mu          sync.Mutex
	lastChanged Activity
}

// NewService wires the metrics engine over the three domain services and
// subscribes to their change events to track session activity.
func NewService(
	budgetService budget.Service,
	portfolioService portfolio.Service,
	accountService account.Service,
	eventBus *event_bus.EventBus,
) *ServiceImpl {
	s := &ServiceImpl{
		budgetService:    budgetService,
		portfolioService: portfolioService,
		accountService:   accountService,
	}

	event_bus.SubscribeTyped(eventBus, event_bus.TopicBudgetChanged,
		func(e event_bus.EventT[event_bus.BudgetChanged]) error {
			s.mu.Lock()
			s.lastChanged.Budget = e.Timestamp
			s.mu.Unlock()
			return nil
		})
	event_bus.SubscribeTyped(eventBus, event_bus.TopicPortfolioChanged,
		func(e event_bus.EventT[event_bus.PortfolioChanged]) error {
			s.mu.Lock()
			s.lastChanged.Portfolio = e.Timestamp
			s.mu.Unlock()
			return nil
		})
	event_bus.SubscribeTyped(eventBus, event_bus.TopicAccountsChanged,
		func(e event_bus.EventT[event_bus.AccountsChanged]) error {
			s.mu.Lock()
			s.lastChanged.Accounts = e.Timestamp
			s.mu.Unlock()
			return nil
		})

	return s
}

func (s *ServiceImpl) Summary(ctx context.Context) Summary {
	budgetSnapshot := s.budgetService.Snapshot(ctx)
	holdings := s.portfolioService.Snapshot(ctx)
	accounts := s.accountService.List(ctx)

	totalIncome := TotalAmount(budgetSnapshot.Income)
	totalExpenses := TotalAmount(budgetSnapshot.Expenses)
	portfolioValue := PortfolioValue(holdings)
	annualDividends := AnnualDividendIncome(holdings)
	totalBalance := TotalBalance(accounts)

	topHoldings := holdings
	if len(topHoldings) > topHoldingsLimit {
		topHoldings = topHoldings[:topHoldingsLimit]
	}

	s.mu.Lock()
	lastChanged := s.lastChanged
	s.mu.Unlock()

	return Summary{
		TotalIncome:           totalIncome,
		TotalExpenses:         totalExpenses,
		NetCashFlow:           totalIncome.Sub(totalExpenses),
		PortfolioValue:        portfolioValue,
		AnnualDividendIncome:  annualDividends,
		MonthlyDividendIncome: annualDividends.Div(twelve),
		TotalAccountBalance:   totalBalance,
		TotalNetWorth:         totalBalance.Add(portfolioValue),
		AccountCount:          len(accounts),
		HoldingCount:          len(holdings),
		TopHoldings:           topHoldings,
		LastChanged:           lastChanged,
	}
}
