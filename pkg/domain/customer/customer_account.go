// Package customer defines the CustomerAccount link entity.
package customer

import "github.com/google/uuid"

// Account links a customer to one of their bank accounts. A customer may hold
// several accounts, each through its own link row.
//
// Transaction rows reference this record's ID, not the bank Account's ID.
type Account struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	AccountID  uuid.UUID
}

// NewAccount constructs a customer-account link.
func NewAccount(id, customerID, accountID uuid.UUID) *Account {
	return &Account{
		ID:         id,
		CustomerID: customerID,
		AccountID:  accountID,
	}
}
