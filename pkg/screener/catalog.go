package screener

import "github.com/shopspring/decimal"

// sampleCatalog is the built-in high-yield dividend security sample. There is
// no market-data integration; prices and yields are a static snapshot.
var sampleCatalog = []Security{
	{Ticker: "QYLD", Name: "Global X NASDAQ Covered Call ETF", Yield: dec("52.3"), Price: dec("17.85"), Frequency: FrequencyMonthly, Sector: "ETF"},
	{Ticker: "XYLD", Name: "Global X S&P 500 Covered Call ETF", Yield: dec("51.8"), Price: dec("42.15"), Frequency: FrequencyMonthly, Sector: "ETF"},
	{Ticker: "RYLD", Name: "Global X Russell 2000 Covered Call", Yield: dec("53.2"), Price: dec("38.90"), Frequency: FrequencyMonthly, Sector: "ETF"},
	{Ticker: "JEPI", Name: "JPMorgan Equity Premium Income", Yield: dec("50.4"), Price: dec("55.20"), Frequency: FrequencyMonthly, Sector: "ETF"},
	{Ticker: "DIVO", Name: "Amplify CWP Enhanced Dividend", Yield: dec("52.1"), Price: dec("28.45"), Frequency: FrequencyQuarterly, Sector: "ETF"},
	{Ticker: "SVOL", Name: "Simplify Volatility Premium ETF", Yield: dec("68.5"), Price: dec("31.20"), Frequency: FrequencyMonthly, Sector: "ETF"},
	{Ticker: "ULTY", Name: "YieldMax Ultra Option Income", Yield: dec("71.2"), Price: dec("18.95"), Frequency: FrequencyMonthly, Sector: "ETF"},
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// SampleCatalog returns a copy of the built-in security catalog.
func SampleCatalog() []Security {
	catalog := make([]Security, len(sampleCatalog))
	copy(catalog, sampleCatalog)
	return catalog
}
