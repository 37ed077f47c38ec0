// Package testutils provides an in-memory stand-in for the ledger store with
// snapshot-based transactions and per-call failure injection, so workflow
// handlers can be tested for atomicity without a database.
package testutils

import (
	"context"
	"errors"
	"sync"

	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
)

// Store holds the four entity tables in memory.
//
// The Fail*OnCall fields inject non-exceptional write failures: the Nth call
// (1-based) of the matching method reports ok == false, exactly as a
// zero-rows-affected statement would. The Fault field injects a store fault:
// when set, every repository call returns it.
type Store struct {
	mu sync.Mutex

	accounts         map[uuid.UUID]dto.AccountRead
	vaults           map[uuid.UUID]dto.VaultRead
	customerAccounts map[uuid.UUID]dto.CustomerAccountRead
	transactions     map[uuid.UUID]dto.TransactionRead
	txOrder          []uuid.UUID

	FailAccountAddOnCall        int
	FailAccountUpdateOnCall     int
	FailAccountDeleteOnCall     int
	FailVaultAddOnCall          int
	FailVaultUpdateOnCall       int
	FailVaultDeleteOnCall       int
	FailCustomerAddOnCall       int
	FailCustomerDeleteOnCall    int
	FailTransactionAddOnCall    int
	FailTransactionDeleteOnCall int
	Fault                       error

	accountAddCalls        int
	accountUpdateCalls     int
	accountDeleteCalls     int
	vaultAddCalls          int
	vaultUpdateCalls       int
	vaultDeleteCalls       int
	customerAddCalls       int
	customerDeleteCalls    int
	transactionAddCalls    int
	transactionDeleteCalls int
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		accounts:         make(map[uuid.UUID]dto.AccountRead),
		vaults:           make(map[uuid.UUID]dto.VaultRead),
		customerAccounts: make(map[uuid.UUID]dto.CustomerAccountRead),
		transactions:     make(map[uuid.UUID]dto.TransactionRead),
	}
}

type snapshot struct {
	accounts         map[uuid.UUID]dto.AccountRead
	vaults           map[uuid.UUID]dto.VaultRead
	customerAccounts map[uuid.UUID]dto.CustomerAccountRead
	transactions     map[uuid.UUID]dto.TransactionRead
	txOrder          []uuid.UUID
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot{
		accounts:         copyMap(s.accounts),
		vaults:           copyMap(s.vaults),
		customerAccounts: copyMap(s.customerAccounts),
		transactions:     copyMap(s.transactions),
		txOrder:          append([]uuid.UUID(nil), s.txOrder...),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = snap.accounts
	s.vaults = snap.vaults
	s.customerAccounts = snap.customerAccounts
	s.transactions = snap.transactions
	s.txOrder = snap.txOrder
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// AccountCount reports the number of stored accounts.
func (s *Store) AccountCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}

// VaultByAccount returns the vault of the given account, or nil.
func (s *Store) VaultByAccount(accountID uuid.UUID) *dto.VaultRead {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.vaults {
		if v.AccountID == accountID {
			row := v
			return &row
		}
	}
	return nil
}

// CustomerAccountsFor returns the link rows of the given customer.
func (s *Store) CustomerAccountsFor(customerID uuid.UUID) []dto.CustomerAccountRead {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []dto.CustomerAccountRead
	for _, ca := range s.customerAccounts {
		if ca.CustomerID == customerID {
			out = append(out, ca)
		}
	}
	return out
}

// TransactionsFor returns the transactions of the given customer account in
// creation order.
func (s *Store) TransactionsFor(customerAccountID uuid.UUID) []dto.TransactionRead {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []dto.TransactionRead
	for _, id := range s.txOrder {
		tx, ok := s.transactions[id]
		if ok && tx.CustomerAccountID == customerAccountID {
			out = append(out, tx)
		}
	}
	return out
}

// TransactionCount reports the number of stored transactions.
func (s *Store) TransactionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transactions)
}

// UoW implements repository.UnitOfWork over the in-memory store. Do takes a
// snapshot before running fn and restores it when fn fails, mirroring the
// rollback semantics of a real store transaction.
type UoW struct {
	store *Store
	inTx  bool
}

// NewUoW creates a unit of work over the in-memory store.
func NewUoW(store *Store) *UoW {
	return &UoW{store: store}
}

// Do runs fn against the store, rolling the store back to its prior state
// when fn returns an error.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.inTx {
		return errors.New("nested unit of work scopes are not supported")
	}
	snap := u.store.snapshot()
	err := fn(&UoW{store: u.store, inTx: true})
	if err != nil {
		u.store.restore(snap)
	}
	return err
}

// Accounts returns the in-memory AccountRepository.
func (u *UoW) Accounts() repository.AccountRepository {
	return &accountRepo{store: u.store}
}

// Vaults returns the in-memory VaultRepository.
func (u *UoW) Vaults() repository.VaultRepository {
	return &vaultRepo{store: u.store}
}

// CustomerAccounts returns the in-memory CustomerAccountRepository.
func (u *UoW) CustomerAccounts() repository.CustomerAccountRepository {
	return &customerAccountRepo{store: u.store}
}

// Transactions returns the in-memory TransactionRepository.
func (u *UoW) Transactions() repository.TransactionRepository {
	return &transactionRepo{store: u.store}
}
