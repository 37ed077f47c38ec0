// Package transaction provides the gorm-backed TransactionRepository.
package transaction

import (
	"context"
	"errors"

	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// New creates a TransactionRepository bound to the given session.
func New(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Add(ctx context.Context, create dto.TransactionCreate) (bool, error) {
	row := Transaction{
		ID:                create.ID,
		CustomerAccountID: create.CustomerAccountID,
		Type:              create.Type,
		Amount:            create.Amount,
		Currency:          create.Currency,
		Description:       create.Description,
		TransactionDate:   create.TransactionDate,
	}
	res := r.db.WithContext(ctx).Create(&row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *transactionRepository) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	var row Transaction
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapRowToRead(&row), nil
}

func (r *transactionRepository) GetByAccountID(ctx context.Context, customerAccountID uuid.UUID) ([]dto.TransactionRead, error) {
	var rows []Transaction
	err := r.db.WithContext(ctx).
		Where("customer_account_id = ?", customerAccountID).
		Order("transaction_date asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	reads := make([]dto.TransactionRead, 0, len(rows))
	for i := range rows {
		reads = append(reads, *mapRowToRead(&rows[i]))
	}
	return reads, nil
}

func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&Transaction{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func mapRowToRead(row *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:                row.ID,
		CustomerAccountID: row.CustomerAccountID,
		Type:              row.Type,
		Amount:            row.Amount,
		Currency:          row.Currency,
		Description:       row.Description,
		TransactionDate:   row.TransactionDate,
	}
}
