// Package dto contains the data-transfer shapes exchanged between workflow
// handlers and repositories. Create/Update DTOs carry writes in; Read DTOs
// carry query results out.
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountCreate carries a new account row.
type AccountCreate struct {
	ID            uuid.UUID
	Type          string
	SortCode      string
	AccountNumber string
}

// AccountUpdate carries mutable account fields. Sort code and account number
// are immutable and deliberately absent.
type AccountUpdate struct {
	Type string
}

// AccountRead is a read-optimized account projection.
type AccountRead struct {
	ID            uuid.UUID
	Type          string
	SortCode      string
	AccountNumber string
}

// VaultCreate carries a new vault row.
type VaultCreate struct {
	ID             uuid.UUID
	AccountID      uuid.UUID
	CurrentBalance decimal.Decimal
	Currency       string
}

// VaultUpdate carries a replacement balance for an existing vault.
type VaultUpdate struct {
	CurrentBalance decimal.Decimal
	Currency       string
}

// VaultRead is a read-optimized vault projection.
type VaultRead struct {
	ID             uuid.UUID
	AccountID      uuid.UUID
	CurrentBalance decimal.Decimal
	Currency       string
}

// CustomerAccountCreate carries a new customer-account link row.
type CustomerAccountCreate struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	AccountID  uuid.UUID
}

// CustomerAccountRead is a read-optimized customer-account link projection.
type CustomerAccountRead struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	AccountID  uuid.UUID
}

// TransactionCreate carries a new transaction-history row.
type TransactionCreate struct {
	ID                uuid.UUID
	CustomerAccountID uuid.UUID
	Type              string
	Amount            decimal.Decimal
	Currency          string
	Description       string
	TransactionDate   time.Time
}

// TransactionRead is a read-optimized transaction projection.
type TransactionRead struct {
	ID                uuid.UUID
	CustomerAccountID uuid.UUID
	Type              string
	Amount            decimal.Decimal
	Currency          string
	Description       string
	TransactionDate   time.Time
}
