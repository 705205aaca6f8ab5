package portfolio

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthdesk/wealthdesk/pkg/screener"
)

// Holding is a portfolio position: a snapshot of a catalog security taken at
// acquisition time plus a share count. Price is never re-fetched afterwards,
// so valuation always uses the acquisition-time price.
type Holding struct {
	Id     int64
	Ticker string
	Name   string
	// Yield is the annualized distribution yield in percent, frozen at
	// acquisition time.
	Yield         decimal.Decimal
	Price         decimal.Decimal
	Frequency     screener.Frequency
	Sector        string
	Shares        decimal.Decimal
	PurchasePrice decimal.Decimal
	PurchaseDate  time.Time
}

// Value is shares times the acquisition-time price.
func (h Holding) Value() decimal.Decimal {
	return h.Shares.Mul(h.Price)
}

// AnnualDividend estimates yearly distributions from the frozen yield.
func (h Holding) AnnualDividend() decimal.Decimal {
	return h.Value().Mul(h.Yield).Div(decimal.NewFromInt(100))
}
