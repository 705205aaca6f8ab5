package dashboard

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthdesk/wealthdesk/pkg/account"
	"github.com/wealthdesk/wealthdesk/pkg/budget"
	"github.com/wealthdesk/wealthdesk/pkg/portfolio"
)

// Summary is the full set of derived metrics over the current state. It is
// recomputed on every read and never persisted.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetCashFlow   decimal.Decimal

	PortfolioValue        decimal.Decimal
	AnnualDividendIncome  decimal.Decimal
	MonthlyDividendIncome decimal.Decimal

	TotalAccountBalance decimal.Decimal
	TotalNetWorth       decimal.Decimal

	AccountCount int
	HoldingCount int
	TopHoldings  []portfolio.Holding

	LastChanged Activity
}

// Activity records when each collection last changed within this session.
// Zero times mean "not changed since startup".
type Activity struct {
	Budget    time.Time
	Portfolio time.Time
	Accounts  time.Time
}

// TotalAmount sums entry amounts. Zero-value amounts (the default for
// unparsable input) contribute nothing.
func TotalAmount(entries []budget.Entry) decimal.Decimal {
	sum := decimal.Zero
	for _, entry := range entries {
		sum = sum.Add(entry.Amount)
	}
	return sum
}

// PortfolioValue sums shares times acquisition-time price over all holdings.
func PortfolioValue(holdings []portfolio.Holding) decimal.Decimal {
	sum := decimal.Zero
	for _, h := range holdings {
		sum = sum.Add(h.Value())
	}
	return sum
}

// AnnualDividendIncome sums estimated yearly distributions over all holdings.
func AnnualDividendIncome(holdings []portfolio.Holding) decimal.Decimal {
	sum := decimal.Zero
	for _, h := range holdings {
		sum = sum.Add(h.AnnualDividend())
	}
	return sum
}

// TotalBalance sums signed account balances.
func TotalBalance(accounts []account.Account) decimal.Decimal {
	sum := decimal.Zero
	for _, acc := range accounts {
		sum = sum.Add(acc.Balance)
	}
	return sum
}
