package account

import "github.com/shopspring/decimal"

// Type is the closed set of account categories.
type Type string

const (
	TypeChecking   Type = "checking"
	TypeSavings    Type = "savings"
	TypeInvestment Type = "investment"
	TypeCredit     Type = "credit"
	TypeLoan       Type = "loan"
	TypeOther      Type = "other"
)

var typeLabels = map[Type]string{
	TypeChecking:   "Checking",
	TypeSavings:    "Savings",
	TypeInvestment: "Investment",
	TypeCredit:     "Credit Card",
	TypeLoan:       "Loan",
	TypeOther:      "Other",
}

// ParseType validates a user-supplied account type.
func ParseType(s string) (Type, bool) {
	t := Type(s)
	_, ok := typeLabels[t]
	return t, ok
}

// Label returns the display name for the type.
func (t Type) Label() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return typeLabels[TypeOther]
}

// Account is a bank or brokerage account with a user-maintained balance.
// Balance is signed: credit and loan accounts typically carry negative values.
type Account struct {
	Id          int64
	Name        string
	Type        Type
	Institution string
	Balance     decimal.Decimal
}
