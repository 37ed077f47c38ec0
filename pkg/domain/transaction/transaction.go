// Package transaction defines the append-only Transaction entity and its
// Details value object.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type categorises a ledger transaction.
type Type string

// Supported transaction types.
const (
	TypeTransferSent     Type = "TransferSent"
	TypeTransferReceived Type = "TransferReceived"
	TypeDeposit          Type = "Deposit"
	TypeWithdrawal       Type = "Withdrawal"
	TypeInterest         Type = "Interest"
	TypeCharge           Type = "Charge"
	TypeCredit           Type = "Credit"
	TypeDebit            Type = "Debit"
)

// Details describes what a transaction did. Description is derived from the
// type at construction and is never independently settable.
type Details struct {
	Type        Type
	Amount      decimal.Decimal
	Currency    string
	Description string
}

// NewDetails constructs transaction details with the description derived from
// the type.
func NewDetails(txType Type, amount decimal.Decimal, currency string) Details {
	return Details{
		Type:        txType,
		Amount:      amount,
		Currency:    currency,
		Description: describe(txType),
	}
}

func describe(txType Type) string {
	switch txType {
	case TypeCredit:
		return "Money Credited"
	case TypeDebit:
		return "Money Debited"
	case TypeDeposit:
		return "Money Deposited"
	case TypeWithdrawal:
		return "Money Withdrawn"
	case TypeTransferSent:
		return "Money Sent"
	case TypeTransferReceived:
		return "Money Received"
	case TypeInterest:
		return "Interest Added"
	case TypeCharge:
		return "Charge Deducted"
	default:
		return "Unknown"
	}
}

// Transaction is one append-only row of ledger history. It references the
// CustomerAccount link, not the bank Account.
//
// Invariants:
//   - Created once, never updated; deleted only by the account-closure
//     cascade.
type Transaction struct {
	ID                     uuid.UUID
	CustomerAccountID      uuid.UUID
	Details                Details
	TransactionDateTimeUTC time.Time
}

// New constructs a Transaction.
func New(id, customerAccountID uuid.UUID, details Details, at time.Time) *Transaction {
	return &Transaction{
		ID:                     id,
		CustomerAccountID:      customerAccountID,
		Details:                details,
		TransactionDateTimeUTC: at,
	}
}
