package account

import "github.com/google/uuid"

// Account is the database row for a bank account.
type Account struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type          string    `gorm:"column:type;not null"`
	SortCode      string    `gorm:"column:sort_code;type:varchar(8);not null"`
	AccountNumber string    `gorm:"column:account_number;type:varchar(8);not null"`
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
