// Package commands contains the command and query DTOs dispatched to the
// workflow handlers.
package commands

import (
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/google/uuid"
)

// CreateAccount creates a bare Account row without a vault or customer link.
// Administrative variant; customers open accounts through CreateBankAccount.
type CreateAccount struct {
	ID   uuid.UUID    `validate:"required"`
	Type account.Type `validate:"required"`
}

// UpdateAccount replaces the type of an existing account.
type UpdateAccount struct {
	ID   uuid.UUID    `validate:"required"`
	Type account.Type `validate:"required"`
}

// DeleteAccount removes a single account row.
type DeleteAccount struct {
	ID uuid.UUID `validate:"required"`
}

// GetAccountByID looks up one account.
type GetAccountByID struct {
	ID uuid.UUID `validate:"required"`
}
