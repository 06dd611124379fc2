// Package deliverymanrepo persists delivery-worker accounts.
package deliverymanrepo

import (
	"orderflow/internal/core/domain/model/deliveryman"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryManDTO is the database representation of a delivery worker.
type DeliveryManDTO struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name                 string
	City                 string          `gorm:"index"`
	BaseFee              decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalDeliveries      int
	SuccessfulDeliveries int
	TotalEarned          decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName overrides GORM's default naming to use "delivery_men".
func (DeliveryManDTO) TableName() string {
	return "delivery_men"
}

func fromDomain(aggregate *deliveryman.DeliveryMan) DeliveryManDTO {
	return DeliveryManDTO{
		ID:                   aggregate.ID().Bytes(),
		Name:                 aggregate.Name(),
		City:                 aggregate.City().String(),
		BaseFee:              aggregate.BaseFee(),
		TotalDeliveries:      aggregate.TotalDeliveries(),
		SuccessfulDeliveries: aggregate.SuccessfulDeliveries(),
		TotalEarned:          aggregate.TotalEarned(),
	}
}

func toDomain(dto DeliveryManDTO) (*deliveryman.DeliveryMan, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return deliveryman.RestoreDeliveryMan(
		id,
		dto.Name,
		kernel.CityFromString(dto.City),
		dto.BaseFee,
		dto.TotalDeliveries,
		dto.SuccessfulDeliveries,
		dto.TotalEarned,
	)
}
