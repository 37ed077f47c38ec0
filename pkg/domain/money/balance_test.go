package money_test

import (
	"testing"

	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestZeroIsZeroInDefaultCurrency(t *testing.T) {
	z := money.Zero()
	assert.True(t, z.Amount().IsZero())
	assert.Equal(t, money.DefaultCurrency, z.Currency())
}

func TestAddAndSubtractAreExact(t *testing.T) {
	b := money.New(decimal.RequireFromString("0.30"), "GBP")
	a := decimal.RequireFromString("0.10")

	assert.True(t, b.Add(a).Subtract(a).Equals(b))
	assert.True(t, b.Subtract(a).Add(a).Equals(b))
	assert.Equal(t, "0.40 GBP", b.Add(a).String())
}

func TestOperationsDoNotMutateReceiver(t *testing.T) {
	b := money.New(decimal.NewFromInt(100), "GBP")
	_ = b.Add(decimal.NewFromInt(50))
	_ = b.Subtract(decimal.NewFromInt(50))
	assert.True(t, b.Amount().Equal(decimal.NewFromInt(100)))
}

func TestSubtractMayGoNegative(t *testing.T) {
	b := money.Zero().Subtract(decimal.NewFromInt(25))
	assert.True(t, b.Amount().Equal(decimal.NewFromInt(-25)))
}

func TestEqualsRequiresSameCurrency(t *testing.T) {
	amount := decimal.NewFromInt(10)
	assert.False(t, money.New(amount, "GBP").Equals(money.New(amount, "EUR")))
	assert.True(t, money.New(amount, "GBP").Equals(money.New(amount, "GBP")))
}
