package vault

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vault is the database row for an account's balance.
type Vault struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID      uuid.UUID       `gorm:"column:account_id;type:uuid;not null;uniqueIndex"`
	CurrentBalance decimal.Decimal `gorm:"column:current_balance;type:numeric(20,4);not null"`
	Currency       string          `gorm:"column:currency;type:varchar(3);not null;default:'GBP'"`
}

// TableName specifies the table name for the Vault model.
func (Vault) TableName() string {
	return "vaults"
}
