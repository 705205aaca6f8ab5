package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Budget
	r.HandleFunc("/api/budget", deps.BudgetHandler.GetBudget).Methods("GET")
	r.HandleFunc("/api/budget/income", deps.BudgetHandler.AddIncome).Methods("POST")
	r.HandleFunc("/api/budget/income/{entryId}", deps.BudgetHandler.DeleteIncome).Methods("DELETE")
	r.HandleFunc("/api/budget/expense", deps.BudgetHandler.AddExpense).Methods("POST")
	r.HandleFunc("/api/budget/expense/{entryId}", deps.BudgetHandler.DeleteExpense).Methods("DELETE")

	// Accounts
	r.HandleFunc("/api/account", deps.AccountHandler.ListAccounts).Methods("GET")
	r.HandleFunc("/api/account", deps.AccountHandler.CreateAccount).Methods("POST")
	r.HandleFunc("/api/account/{accountId}/balance", deps.AccountHandler.UpdateBalance).Methods("PUT")
	r.HandleFunc("/api/account/{accountId}", deps.AccountHandler.DeleteAccount).Methods("DELETE")

	// Portfolio
	r.HandleFunc("/api/portfolio", deps.PortfolioHandler.GetPortfolio).Methods("GET")
	r.HandleFunc("/api/portfolio/holding", deps.PortfolioHandler.AddHolding).Methods("POST")
	r.HandleFunc("/api/portfolio/holding/{holdingId}", deps.PortfolioHandler.RemoveHolding).Methods("DELETE")

	// Screener
	r.HandleFunc("/api/securities", deps.ScreenerHandler.ScreenSecurities).Methods("GET")

	// Dashboard
	r.HandleFunc("/api/dashboard/summary", deps.DashboardHandler.GetSummary).Methods("GET")
}
