package app

import (
	"context"

	"github.com/wealthdesk/wealthdesk/internal/event_bus"
	"github.com/wealthdesk/wealthdesk/internal/storage"
	"github.com/wealthdesk/wealthdesk/internal/utils"
	"github.com/wealthdesk/wealthdesk/pkg/account"
	"github.com/wealthdesk/wealthdesk/pkg/budget"
	"github.com/wealthdesk/wealthdesk/pkg/dashboard"
	"github.com/wealthdesk/wealthdesk/pkg/portfolio"
	"github.com/wealthdesk/wealthdesk/pkg/screener"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus

	BudgetRepo    budget.Repository
	BudgetService budget.Service
	BudgetHandler *budget.Handler

	PortfolioRepo    portfolio.Repository
	PortfolioService portfolio.Service
	PortfolioHandler *portfolio.Handler

	AccountRepo    account.Repository
	AccountService account.Service
	AccountHandler *account.Handler

	ScreenerService screener.Service
	ScreenerHandler *screener.Handler

	DashboardService dashboard.Service
	DashboardHandler *dashboard.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and
// handlers. The three collection services load their persisted snapshots
// here; a missing snapshot just means an empty collection.
func BuildDependencies(store storage.Store, writer *storage.Writer) *Dependencies {
	deps := &Dependencies{}
	ctx := context.Background()

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.BudgetRepo = budget.NewRepository(store, writer)
	deps.BudgetService = budget.NewService(ctx, deps.BudgetRepo, deps.EventBus)
	deps.BudgetHandler = budget.NewHandler(deps.BudgetService)

	deps.ScreenerService = screener.NewService(screener.SampleCatalog())
	deps.ScreenerHandler = screener.NewHandler(deps.ScreenerService)

	deps.PortfolioRepo = portfolio.NewRepository(store, writer)
	deps.PortfolioService = portfolio.NewService(ctx, deps.PortfolioRepo, deps.EventBus, deps.Clock)
	deps.PortfolioHandler = portfolio.NewHandler(deps.PortfolioService, deps.ScreenerService)

	deps.AccountRepo = account.NewRepository(store, writer)
	deps.AccountService = account.NewService(ctx, deps.AccountRepo, deps.EventBus)
	deps.AccountHandler = account.NewHandler(deps.AccountService)

	deps.DashboardService = dashboard.NewService(deps.BudgetService, deps.PortfolioService, deps.AccountService, deps.EventBus)
	deps.DashboardHandler = dashboard.NewHandler(deps.DashboardService)

	return deps
}
