// Package money provides the Balance value object used by vaults and
// transaction amounts.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency newly created vaults start in.
const DefaultCurrency = "GBP"

// Balance represents a monetary value in a specific currency.
// Invariants:
//   - Immutable: any change produces a new Balance instance.
//   - Amount arithmetic is decimal-exact, never floating point.
//
// No currency-mismatch validation is performed when combining balances; the
// amounts are combined as-is and the receiver's currency is kept.
type Balance struct {
	amount   decimal.Decimal
	currency string
}

// New creates a Balance with the given amount and currency.
func New(amount decimal.Decimal, currency string) Balance {
	return Balance{amount: amount, currency: currency}
}

// Zero returns a zero balance in the default currency.
func Zero() Balance {
	return Balance{amount: decimal.Zero, currency: DefaultCurrency}
}

// Amount returns the monetary amount.
func (b Balance) Amount() decimal.Decimal {
	return b.amount
}

// Currency returns the currency code.
func (b Balance) Currency() string {
	return b.currency
}

// Add returns a new Balance increased by amount.
func (b Balance) Add(amount decimal.Decimal) Balance {
	return Balance{amount: b.amount.Add(amount), currency: b.currency}
}

// Subtract returns a new Balance decreased by amount. The amount may go
// negative; no overdraft check is applied here.
func (b Balance) Subtract(amount decimal.Decimal) Balance {
	return Balance{amount: b.amount.Sub(amount), currency: b.currency}
}

// Equals reports whether both balances hold the same amount and currency.
func (b Balance) Equals(other Balance) bool {
	return b.currency == other.currency && b.amount.Equal(other.amount)
}

func (b Balance) String() string {
	return fmt.Sprintf("%s %s", b.amount.String(), b.currency)
}
