// Package repository provides the gorm-backed unit of work binding the four
// ledger repositories to one store transaction.
package repository

import (
	"context"
	"errors"

	infraaccount "github.com/amirasaad/ledger/infra/repository/account"
	infracustomer "github.com/amirasaad/ledger/infra/repository/customeraccount"
	infratransaction "github.com/amirasaad/ledger/infra/repository/transaction"
	infravault "github.com/amirasaad/ledger/infra/repository/vault"
	"github.com/amirasaad/ledger/pkg/repository"
	"gorm.io/gorm"
)

// ErrNestedUnitOfWork is returned when Do is called on a UoW that is already
// inside a transaction scope.
var ErrNestedUnitOfWork = errors.New("nested unit of work scopes are not supported")

// UoW implements repository.UnitOfWork on a gorm database handle.
//
// Repositories are constructed fresh for each access, bound to the current
// session: the open transaction inside Do, the base connection outside it.
// Nothing is shared across concurrent workflow invocations.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a unit of work over the given database handle.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do opens one store transaction and runs fn with a UoW bound to it. The
// transaction commits when fn returns nil and rolls back when fn returns an
// error or panics; a rollback with nothing written is a no-op at the store
// level.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return ErrNestedUnitOfWork
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Accounts returns an AccountRepository bound to the current session.
func (u *UoW) Accounts() repository.AccountRepository {
	return infraaccount.New(u.session())
}

// Vaults returns a VaultRepository bound to the current session.
func (u *UoW) Vaults() repository.VaultRepository {
	return infravault.New(u.session())
}

// CustomerAccounts returns a CustomerAccountRepository bound to the current
// session.
func (u *UoW) CustomerAccounts() repository.CustomerAccountRepository {
	return infracustomer.New(u.session())
}

// Transactions returns a TransactionRepository bound to the current session.
func (u *UoW) Transactions() repository.TransactionRepository {
	return infratransaction.New(u.session())
}
