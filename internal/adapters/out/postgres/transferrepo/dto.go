// Package transferrepo owns the schema of the administrative money-transfer
// ledger. Transfers are written by back-office tooling, not by this service:
// the delivery settlement only ever applies balance changes additively, so
// both writers compose on the merchants and delivery_men balance columns
// without coordination. The table is migrated here so the schema stays in
// one place.
package transferrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account types a transfer can target.
const (
	AccountMerchant    = "MERCHANT"
	AccountDeliveryMan = "DELIVERY_MAN"
)

// MoneyTransferDTO is one administrative balance adjustment. Amount is
// signed: positive credits the account, negative debits it.
type MoneyTransferDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID   uuid.UUID       `gorm:"type:uuid;index"`
	AccountType string          `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2)"`
	Reason      string
	CreatedBy   uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "money_transfers".
func (MoneyTransferDTO) TableName() string {
	return "money_transfers"
}
