// Package merchantrepo persists merchant accounts. Settlements apply as
// additive SQL expressions so concurrent deliveries for one merchant
// accumulate instead of overwriting each other.
package merchantrepo

import (
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/merchant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MerchantDTO is the database representation of a merchant account.
type MerchantDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string
	BaseFee     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Balance     decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalEarned decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName overrides GORM's default naming to use "merchants".
func (MerchantDTO) TableName() string {
	return "merchants"
}

func fromDomain(aggregate *merchant.Merchant) MerchantDTO {
	return MerchantDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		BaseFee:     aggregate.BaseFee(),
		Balance:     aggregate.Balance(),
		TotalEarned: aggregate.TotalEarned(),
	}
}

func toDomain(dto MerchantDTO) (*merchant.Merchant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return merchant.RestoreMerchant(id, dto.Name, dto.BaseFee, dto.Balance, dto.TotalEarned)
}
