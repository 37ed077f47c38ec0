package commands

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateVault creates a vault for an existing account with the default
// starting balance.
type CreateVault struct {
	ID        uuid.UUID `validate:"required"`
	AccountID uuid.UUID `validate:"required"`
}

// UpdateVault replaces a vault's balance outright. Administrative variant;
// money movement goes through AddMoney/WithdrawMoney/TransferFunds.
type UpdateVault struct {
	ID       uuid.UUID `validate:"required"`
	Amount   decimal.Decimal
	Currency string `validate:"required"`
}

// DeleteVault removes a single vault row.
type DeleteVault struct {
	ID uuid.UUID `validate:"required"`
}

// GetVaultByID looks up one vault.
type GetVaultByID struct {
	ID uuid.UUID `validate:"required"`
}
