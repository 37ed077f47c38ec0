package customeraccount

import "github.com/google/uuid"

// CustomerAccount is the database row linking a customer to a bank account.
type CustomerAccount struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"column:customer_id;type:uuid;not null;index"`
	AccountID  uuid.UUID `gorm:"column:account_id;type:uuid;not null;index"`
}

// TableName specifies the table name for the CustomerAccount model.
func (CustomerAccount) TableName() string {
	return "customer_accounts"
}
