// Package repository defines the persistence contracts the workflow handlers
// orchestrate against. Each interface has one store-backed implementation in
// infra/repository and in-memory fakes for tests.
//
// Write methods return (ok, err). ok == false with a nil error is a
// non-exceptional failure: the statement ran but affected no rows (for
// example the row was already gone). A non-nil error is a store fault
// (connectivity, constraint violation) and is reported separately by the
// enclosing workflow. Reads return (nil, nil) when the lookup finds nothing.
package repository

import (
	"context"

	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/google/uuid"
)

// AccountRepository persists bank Account rows.
type AccountRepository interface {
	Add(ctx context.Context, create dto.AccountCreate) (bool, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error)
	Update(ctx context.Context, id uuid.UUID, update dto.AccountUpdate) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// VaultRepository persists Vault rows.
type VaultRepository interface {
	Add(ctx context.Context, create dto.VaultCreate) (bool, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.VaultRead, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*dto.VaultRead, error)
	Update(ctx context.Context, id uuid.UUID, update dto.VaultUpdate) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// CustomerAccountRepository persists the customer-to-account link rows.
type CustomerAccountRepository interface {
	Add(ctx context.Context, create dto.CustomerAccountCreate) (bool, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CustomerAccountRead, error)
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]dto.CustomerAccountRead, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*dto.CustomerAccountRead, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// TransactionRepository persists the append-only transaction history.
// Transactions are never updated; deletion exists only for the
// account-closure cascade.
type TransactionRepository interface {
	Add(ctx context.Context, create dto.TransactionCreate) (bool, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error)
	// GetByAccountID lists transactions keyed by CustomerAccount ID.
	GetByAccountID(ctx context.Context, customerAccountID uuid.UUID) ([]dto.TransactionRead, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
