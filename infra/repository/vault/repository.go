// Package vault provides the gorm-backed VaultRepository.
package vault

import (
	"context"
	"errors"

	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vaultRepository struct {
	db *gorm.DB
}

// New creates a VaultRepository bound to the given session.
func New(db *gorm.DB) repository.VaultRepository {
	return &vaultRepository{db: db}
}

func (r *vaultRepository) Add(ctx context.Context, create dto.VaultCreate) (bool, error) {
	row := Vault{
		ID:             create.ID,
		AccountID:      create.AccountID,
		CurrentBalance: create.CurrentBalance,
		Currency:       create.Currency,
	}
	res := r.db.WithContext(ctx).Create(&row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *vaultRepository) Get(ctx context.Context, id uuid.UUID) (*dto.VaultRead, error) {
	var row Vault
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapRowToRead(&row), nil
}

func (r *vaultRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*dto.VaultRead, error) {
	var row Vault
	err := r.db.WithContext(ctx).First(&row, "account_id = ?", accountID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapRowToRead(&row), nil
}

func (r *vaultRepository) Update(ctx context.Context, id uuid.UUID, update dto.VaultUpdate) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Vault{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"current_balance": update.CurrentBalance,
			"currency":        update.Currency,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *vaultRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&Vault{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func mapRowToRead(row *Vault) *dto.VaultRead {
	return &dto.VaultRead{
		ID:             row.ID,
		AccountID:      row.AccountID,
		CurrentBalance: row.CurrentBalance,
		Currency:       row.Currency,
	}
}
