package screener

import "github.com/shopspring/decimal"

// Frequency is the cadence at which a security distributes dividends.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"

	// FrequencyAll is only valid as a filter value, never on a Security.
	FrequencyAll Frequency = "all"
)

// ParseFrequency parses a filter frequency. Empty input means "all".
func ParseFrequency(s string) (Frequency, bool) {
	switch Frequency(s) {
	case "", FrequencyAll:
		return FrequencyAll, true
	case FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly:
		return Frequency(s), true
	}
	return "", false
}

// Security describes a tradeable instrument's static attributes. Catalog
// entries are immutable; portfolio holdings copy them at acquisition time.
type Security struct {
	Ticker string
	Name   string
	// Yield is the annualized distribution yield in percent.
	Yield     decimal.Decimal
	Price     decimal.Decimal
	Frequency Frequency
	Sector    string
}

// Filter selects securities with at least MinYield whose payout cadence
// matches Frequency (FrequencyAll matches every cadence).
type Filter struct {
	MinYield  decimal.Decimal
	Frequency Frequency
}

// Matches reports whether sec passes the filter.
func (f Filter) Matches(sec Security) bool {
	if sec.Yield.LessThan(f.MinYield) {
		return false
	}
	return f.Frequency == FrequencyAll || f.Frequency == "" || sec.Frequency == f.Frequency
}
