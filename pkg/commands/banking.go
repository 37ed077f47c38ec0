package commands

import (
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBankAccount opens a bank account for a customer: account, vault and
// customer link are created as one atomic triple.
type CreateBankAccount struct {
	CustomerID uuid.UUID    `validate:"required"`
	Type       account.Type `validate:"required"`
}

// DeleteBankAccount closes every account of a customer, cascading through
// transactions, vaults, accounts and links.
type DeleteBankAccount struct {
	CustomerID uuid.UUID `validate:"required"`
}

// AddMoney deposits into the customer's first resolvable account.
type AddMoney struct {
	CustomerID uuid.UUID `validate:"required"`
	Amount     decimal.Decimal
	Currency   string `validate:"required"`
}

// WithdrawMoney withdraws from the customer's first resolvable account.
// No overdraft guard is applied; the balance may go negative.
type WithdrawMoney struct {
	CustomerID uuid.UUID `validate:"required"`
	Amount     decimal.Decimal
	Currency   string `validate:"required"`
}

// TransferFunds moves money from the initiating customer's account to the
// destination account as one atomic unit of four mutations.
type TransferFunds struct {
	CustomerID           uuid.UUID `validate:"required"`
	DestinationAccountID uuid.UUID `validate:"required"`
	Amount               decimal.Decimal
	Currency             string `validate:"required"`
}

// GetTransactionHistory aggregates the transactions of all of a customer's
// accounts, keyed by bank Account ID.
type GetTransactionHistory struct {
	CustomerID uuid.UUID `validate:"required"`
}
