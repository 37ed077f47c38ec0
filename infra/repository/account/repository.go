// Package account provides the gorm-backed AccountRepository.
package account

import (
	"context"
	"errors"

	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// New creates an AccountRepository bound to the given session.
func New(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Add(ctx context.Context, create dto.AccountCreate) (bool, error) {
	row := Account{
		ID:            create.ID,
		Type:          create.Type,
		SortCode:      create.SortCode,
		AccountNumber: create.AccountNumber,
	}
	res := r.db.WithContext(ctx).Create(&row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	var row Account
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapRowToRead(&row), nil
}

func (r *accountRepository) Update(ctx context.Context, id uuid.UUID, update dto.AccountUpdate) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", id).
		Update("type", update.Type)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&Account{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func mapRowToRead(row *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:            row.ID,
		Type:          row.Type,
		SortCode:      row.SortCode,
		AccountNumber: row.AccountNumber,
	}
}
