package repository

import "context"

// UnitOfWork binds one store transaction to the four repositories used within
// a single workflow invocation.
//
// Do is the only way to obtain a transaction-bound UnitOfWork: it opens the
// store transaction, runs fn with repositories bound to it, commits when fn
// returns nil and rolls back when fn returns an error or panics. The scope
// cannot be left open by a forgetful caller. Nesting Do is not supported;
// each workflow owns exactly one scope.
//
// Repository accessors called outside Do return repositories bound to the
// base session, which is how read-only queries run without a transaction.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	Accounts() AccountRepository
	Vaults() VaultRepository
	CustomerAccounts() CustomerAccountRepository
	Transactions() TransactionRepository
}
