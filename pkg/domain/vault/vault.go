// Package vault defines the Vault entity, the balance-holding record for one
// Account.
package vault

import (
	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vault holds the balance for exactly one Account (1:1).
//
// Invariants:
//   - AccountID must reference an existing Account.
//   - Balance starts at 0 GBP and is replaced, never mutated in place.
type Vault struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Balance   money.Balance
}

// New constructs a Vault with the default starting balance of 0 GBP.
func New(id, accountID uuid.UUID) *Vault {
	return &Vault{
		ID:        id,
		AccountID: accountID,
		Balance:   money.Zero(),
	}
}

// NewFromData hydrates a Vault from stored data. Intended for repository
// hydration and test fixtures only.
func NewFromData(id, accountID uuid.UUID, balance money.Balance) *Vault {
	return &Vault{
		ID:        id,
		AccountID: accountID,
		Balance:   balance,
	}
}

// SetBalance replaces the vault's balance with a new Balance built from the
// given amount and currency.
func (v *Vault) SetBalance(amount decimal.Decimal, currency string) {
	v.Balance = money.New(amount, currency)
}
