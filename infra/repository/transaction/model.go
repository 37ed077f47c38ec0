package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is the database row for one entry of transaction history.
type Transaction struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerAccountID uuid.UUID       `gorm:"column:customer_account_id;type:uuid;not null;index"`
	Type              string          `gorm:"column:type;not null"`
	Amount            decimal.Decimal `gorm:"column:amount;type:numeric(20,4);not null"`
	Currency          string          `gorm:"column:currency;type:varchar(3);not null"`
	Description       string          `gorm:"column:description"`
	TransactionDate   time.Time       `gorm:"column:transaction_date;not null"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transaction_history"
}
