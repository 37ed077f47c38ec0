package commands

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/transaction"
	"github.com/google/uuid"
)

// CreateTransaction appends a transaction row directly. Administrative
// variant; the money-movement workflows append their own rows.
type CreateTransaction struct {
	ID                 uuid.UUID `validate:"required"`
	CustomerAccountID  uuid.UUID `validate:"required"`
	Details            transaction.Details
	TransactionDateUTC time.Time
}

// GetTransactionByID looks up one transaction.
type GetTransactionByID struct {
	ID uuid.UUID `validate:"required"`
}

// GetTransactionsByAccountID lists the transactions of one customer account.
type GetTransactionsByAccountID struct {
	CustomerAccountID uuid.UUID `validate:"required"`
}
