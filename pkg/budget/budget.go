package budget

import "github.com/shopspring/decimal"

// Entry is a single income or expense line.
type Entry struct {
	Id          int64
	Description string
	Amount      decimal.Decimal
	Category    string
}

// Budget holds the income and expense lists. The two lists are disjoint and
// independently keyed; together they form one persisted collection.
type Budget struct {
	Income   []Entry
	Expenses []Entry
}

// Copy returns a deep copy so callers can read without observing later
// mutations.
func (b Budget) Copy() Budget {
	c := Budget{
		Income:   make([]Entry, len(b.Income)),
		Expenses: make([]Entry, len(b.Expenses)),
	}
	copy(c.Income, b.Income)
	copy(c.Expenses, b.Expenses)
	return c
}
