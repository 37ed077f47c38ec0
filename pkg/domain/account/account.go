// Package account defines the bank Account entity.
package account

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Type categorises a bank account.
type Type string

// Supported account types.
const (
	TypeSavings Type = "Savings"
	TypeCurrent Type = "Current"
	TypeDemat   Type = "Demat"
)

// Account is a customer-facing bank account. It owns no balance directly;
// its money lives in the associated Vault.
//
// Invariants:
//   - SortCode and AccountNumber are generated at construction and are
//     immutable thereafter.
//   - SortCode has the form NN-NN-NN, AccountNumber is 8 digits.
type Account struct {
	ID            uuid.UUID
	Type          Type
	SortCode      string
	AccountNumber string
}

// New constructs an Account with freshly generated sort code and account
// number.
func New(id uuid.UUID, accountType Type) *Account {
	return &Account{
		ID:            id,
		Type:          accountType,
		SortCode:      generateSortCode(),
		AccountNumber: generateAccountNumber(),
	}
}

// NewFromData hydrates an Account from stored data, bypassing generation.
// Intended for repository hydration and test fixtures only.
func NewFromData(id uuid.UUID, accountType Type, sortCode, accountNumber string) *Account {
	return &Account{
		ID:            id,
		Type:          accountType,
		SortCode:      sortCode,
		AccountNumber: accountNumber,
	}
}

func generateSortCode() string {
	return fmt.Sprintf("%02d-%02d-%02d", rand.IntN(100), rand.IntN(100), rand.IntN(100))
}

func generateAccountNumber() string {
	return fmt.Sprintf("%08d", rand.IntN(100000000))
}
