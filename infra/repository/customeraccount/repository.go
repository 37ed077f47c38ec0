// Package customeraccount provides the gorm-backed CustomerAccountRepository.
package customeraccount

import (
	"context"
	"errors"

	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type customerAccountRepository struct {
	db *gorm.DB
}

// New creates a CustomerAccountRepository bound to the given session.
func New(db *gorm.DB) repository.CustomerAccountRepository {
	return &customerAccountRepository{db: db}
}

func (r *customerAccountRepository) Add(ctx context.Context, create dto.CustomerAccountCreate) (bool, error) {
	row := CustomerAccount{
		ID:         create.ID,
		CustomerID: create.CustomerID,
		AccountID:  create.AccountID,
	}
	res := r.db.WithContext(ctx).Create(&row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *customerAccountRepository) Get(ctx context.Context, id uuid.UUID) (*dto.CustomerAccountRead, error) {
	var row CustomerAccount
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapRowToRead(&row), nil
}

func (r *customerAccountRepository) GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]dto.CustomerAccountRead, error) {
	var rows []CustomerAccount
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&rows).Error; err != nil {
		return nil, err
	}
	reads := make([]dto.CustomerAccountRead, 0, len(rows))
	for i := range rows {
		reads = append(reads, *mapRowToRead(&rows[i]))
	}
	return reads, nil
}

func (r *customerAccountRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*dto.CustomerAccountRead, error) {
	var row CustomerAccount
	err := r.db.WithContext(ctx).First(&row, "account_id = ?", accountID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapRowToRead(&row), nil
}

func (r *customerAccountRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&CustomerAccount{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func mapRowToRead(row *CustomerAccount) *dto.CustomerAccountRead {
	return &dto.CustomerAccountRead{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		AccountID:  row.AccountID,
	}
}
