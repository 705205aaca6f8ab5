package utils

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseDecimal(t *testing.T) {
	t.Run("should parse plain numeric text", func(t *testing.T) {
		assert.True(t, ParseDecimal("1234.56").Equal(decimal.RequireFromString("1234.56")))
		assert.True(t, ParseDecimal(" -250 ").Equal(decimal.NewFromInt(-250)))
	})

	t.Run("should default unparsable input to zero", func(t *testing.T) {
		for _, input := range []string{"", "abc", "12,34", "--5"} {
			assert.True(t, ParseDecimal(input).IsZero(), "input %q", input)
		}
	})
}

func TestParseDecimalJSON(t *testing.T) {
	t.Run("should accept numbers and numeric strings", func(t *testing.T) {
		assert.True(t, ParseDecimalJSON(json.RawMessage(`42.5`)).Equal(decimal.RequireFromString("42.5")))
		assert.True(t, ParseDecimalJSON(json.RawMessage(`"42.5"`)).Equal(decimal.RequireFromString("42.5")))
	})

	t.Run("should default null and absent values to zero", func(t *testing.T) {
		assert.True(t, ParseDecimalJSON(json.RawMessage(`null`)).IsZero())
		assert.True(t, ParseDecimalJSON(nil).IsZero())
	})
}
