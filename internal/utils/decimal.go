package utils

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// ParseDecimal parses user-entered numeric text. Missing or unparsable input
// is treated as zero, never as an error; sums over such values must simply
// ignore them.
func ParseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Debugf("unparsable decimal %q, defaulting to 0", s)
		return decimal.Zero
	}
	return d
}

// ParseDecimalJSON parses a raw JSON value that may be a number, a quoted
// numeric string, null, or absent. Same zero-defaulting as ParseDecimal.
func ParseDecimalJSON(raw json.RawMessage) decimal.Decimal {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "null" {
		return decimal.Zero
	}
	return ParseDecimal(s)
}
