package testutils

import (
	"context"

	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/google/uuid"
)

type accountRepo struct {
	store *Store
}

func (r *accountRepo) Add(_ context.Context, create dto.AccountCreate) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fault != nil {
		return false, s.Fault
	}
	s.accountAddCalls++
	if s.FailAccountAddOnCall == s.accountAddCalls {
		return false, nil
	}
	s.accounts[create.ID] = dto.AccountRead{
		ID:            create.ID,
		Type:          create.Type,
		SortCode:      create.SortCode,
		AccountNumber: create.AccountNumber,
	}
	return true, nil
}

func (r *accountRepo) Get(_ context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fault != nil {
		return nil, s.Fault
	}
	row, ok := s.accounts[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *accountRepo) Update(_ context.Context, id uuid.UUID, update dto.AccountUpdate) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fault != nil {
		return false, s.Fault
	}
	s.accountUpdateCalls++
	if s.FailAccountUpdateOnCall == s.accountUpdateCalls {
		return false, nil
	}
	row, ok := s.accounts[id]
	if !ok {
		return false, nil
	}
	row.Type = update.Type
	s.accounts[id] = row
	return true, nil
}

func (r *accountRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fault != nil {
		return false, s.Fault
	}
	s.accountDeleteCalls++
	if s.FailAccountDeleteOnCall == s.accountDeleteCalls {
		return false, nil
	}
	if _, ok := s.accounts[id]; !ok {
		return false, nil
	}
	delete(s.accounts, id)
	return true, nil
}

type vaultRepo struct {
	store *Store
}

func (r *vaultRepo) Add(_ context.Context, create dto.VaultCreate) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fault != nil {
		return false, s.Fault
	}
	s.vaultAddCalls++
	if s.FailVaultAddOnCall == s.vaultAddCalls {
		return false, nil
	}
	s.vaults[create.ID] = dto.VaultRead{
		ID:             create.ID,
		AccountID:      create.AccountID,
		CurrentBalance: create.CurrentBalance,
		Currency:       create.Currency,
	}
	return true, nil
}

func (r *vaultRepo) Get(_ context.Context, id uuid.UUID) (*dto.VaultRead, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fault != nil {
		return nil, s.Fault
	}
	row, ok := s.vaults[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *vaultRepo) GetByAccountID(_ context.Context, accountID uuid.UUID) (*dto.VaultRead, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fault != nil {
		return nil, s.Fault
	}
	for _, row := range s.vaults {
		if row.AccountID == accountID {
			out := row
			return &out, nil
		}
	}
	return nil, nil
}

func (r *vaultRepo) Update(_ context.Context, id uuid.UUID, update dto.VaultUpdate) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fault != nil {
		return false, s.Fault
	}
	s.vaultUpdateCalls++
	if s.FailVaultUpdateOnCall == s.vaultUpdateCalls {
		return false, nil
	}
	row, ok := s.vaults[id]
	if !ok {
		return false, nil
	}
	row.CurrentBalance = update.CurrentBalance
	row.Currency = update.Currency
	s.vaults[id] = row
	return true, nil
}

func (r *vaultRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fault != nil {
		return false, s.Fault
	}
	s.vaultDeleteCalls++
	if s.FailVaultDeleteOnCall == s.vaultDeleteCalls {
		return false, nil
	}
	if _, ok := s.vaults[id]; !ok {
		return false, nil
	}
	delete(s.vaults, id)
	return true, nil
}

type customerAccountRepo struct {
	store *Store
}

func (r *customerAccountRepo) Add(_ context.Context, create dto.CustomerAccountCreate) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fault != nil {
		return false, s.Fault
	}
	s.customerAddCalls++
	if s.FailCustomerAddOnCall == s.customerAddCalls {
		return false, nil
	}
	s.customerAccounts[create.ID] = dto.CustomerAccountRead{
		ID:         create.ID,
		CustomerID: create.CustomerID,
		AccountID:  create.AccountID,
	}
	return true, nil
}

func (r *customerAccountRepo) Get(_ context.Context, id uuid.UUID) (*dto.CustomerAccountRead, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fault != nil {
		return nil, s.Fault
	}
	row, ok := s.customerAccounts[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *customerAccountRepo) GetByCustomerID(_ context.Context, customerID uuid.UUID) ([]dto.CustomerAccountRead, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fault != nil {
		return nil, s.Fault
	}
	var out []dto.CustomerAccountRead
	for _, row := range s.customerAccounts {
		if row.CustomerID == customerID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *customerAccountRepo) GetByAccountID(_ context.Context, accountID uuid.UUID) (*dto.CustomerAccountRead, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fault != nil {
		return nil, s.Fault
	}
	for _, row := range s.customerAccounts {
		if row.AccountID == accountID {
			out := row
			return &out, nil
		}
	}
	return nil, nil
}

func (r *customerAccountRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fault != nil {
		return false, s.Fault
	}
	s.customerDeleteCalls++
	if s.FailCustomerDeleteOnCall == s.customerDeleteCalls {
		return false, nil
	}
	if _, ok := s.customerAccounts[id]; !ok {
		return false, nil
	}
	delete(s.customerAccounts, id)
	return true, nil
}

type transactionRepo struct {
	store *Store
}

func (r *transactionRepo) Add(_ context.Context, create dto.TransactionCreate) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fault != nil {
		return false, s.Fault
	}
	s.transactionAddCalls++
	if s.FailTransactionAddOnCall == s.transactionAddCalls {
		return false, nil
	}
	s.transactions[create.ID] = dto.TransactionRead{
		ID:                create.ID,
		CustomerAccountID: create.CustomerAccountID,
		Type:              create.Type,
		Amount:            create.Amount,
		Currency:          create.Currency,
		Description:       create.Description,
		TransactionDate:   create.TransactionDate,
	}
	s.txOrder = append(s.txOrder, create.ID)
	return true, nil
}

func (r *transactionRepo) Get(_ context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fault != nil {
		return nil, s.Fault
	}
	row, ok := s.transactions[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *transactionRepo) GetByAccountID(_ context.Context, customerAccountID uuid.UUID) ([]dto.TransactionRead, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fault != nil {
		return nil, s.Fault
	}
	var out []dto.TransactionRead
	for _, id := range s.txOrder {
		row, ok := s.transactions[id]
		if ok && row.CustomerAccountID == customerAccountID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *transactionRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fault != nil {
		return false, s.Fault
	}
	s.transactionDeleteCalls++
	if s.FailTransactionDeleteOnCall == s.transactionDeleteCalls {
		return false, nil
	}
	if _, ok := s.transactions[id]; !ok {
		return false, nil
	}
	delete(s.transactions, id)
	return true, nil
}
