// Package orderrepo persists the order aggregate. Orders map to the orders
// table with their line items in order_items; money columns are stored as
// numeric(12,2) and scanned through shopspring decimals so no float ever
// touches a price.
package orderrepo

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the database representation of an order aggregate.
// Status and city are stored as their string names so the rows stay
// readable in ad hoc queries.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code          string     `gorm:"uniqueIndex"`
	CodeSequence  int        `gorm:"index:idx_orders_city_sequence,unique"`
	Status        string     `gorm:"index"`
	PaymentMethod string
	City          string     `gorm:"index:idx_orders_city_sequence,unique"`
	MerchantID    uuid.UUID  `gorm:"type:uuid;index"`
	DeliveryManID *uuid.UUID `gorm:"type:uuid;index"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`

	OriginalTotalPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalDiscount      decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalPrice         decimal.Decimal `gorm:"type:numeric(12,2)"`
	MerchantEarning    decimal.Decimal `gorm:"type:numeric(12,2)"`

	CreatedAt            time.Time
	DeliveredAt          *time.Time
	DeliveryDate         *time.Time
	PreviousDeliveryDate *time.Time
	DelayReason          string
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. Lines are immutable after creation, so
// updates never touch this table.
type OrderItemDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	ProductID     uuid.UUID `gorm:"type:uuid;index"`
	Quantity      int
	Price         decimal.Decimal `gorm:"type:numeric(12,2)"`
	OriginalPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	IsFree        bool
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var deliveryManID *uuid.UUID
	if id := aggregate.DeliveryMan(); id != nil {
		raw := id.Bytes()
		deliveryManID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:       aggregate.ID().Bytes(),
			ProductID:     item.ProductID().Bytes(),
			Quantity:      item.Quantity(),
			Price:         item.Price(),
			OriginalPrice: item.OriginalPrice(),
			IsFree:        item.IsFree(),
		})
	}

	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		Code:                 aggregate.Code(),
		CodeSequence:         aggregate.CodeSequence(),
		Status:               aggregate.Status().String(),
		PaymentMethod:        aggregate.PaymentMethod().String(),
		City:                 aggregate.City().String(),
		MerchantID:           aggregate.MerchantID().Bytes(),
		DeliveryManID:        deliveryManID,
		Items:                items,
		OriginalTotalPrice:   aggregate.OriginalTotalPrice(),
		TotalDiscount:        aggregate.TotalDiscount(),
		TotalPrice:           aggregate.TotalPrice(),
		MerchantEarning:      aggregate.MerchantEarning(),
		CreatedAt:            aggregate.CreatedAt(),
		DeliveredAt:          aggregate.DeliveredAt(),
		DeliveryDate:         aggregate.DeliveryDate(),
		PreviousDeliveryDate: aggregate.PreviousDeliveryDate(),
		DelayReason:          aggregate.DelayReason(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	var deliveryManID *kernel.UUID
	if dto.DeliveryManID != nil {
		workerID, workerErr := kernel.UUIDFromBytes((*dto.DeliveryManID)[:])
		if workerErr != nil {
			return nil, workerErr
		}

		deliveryManID = &workerID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, productErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if productErr != nil {
			return nil, productErr
		}

		item, itemErr := order.NewItem(
			productID,
			itemDTO.Quantity,
			itemDTO.Price,
			itemDTO.OriginalPrice,
			itemDTO.IsFree,
		)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.Code,
		dto.CodeSequence,
		order.StatusFromString(dto.Status),
		order.PaymentMethodFromString(dto.PaymentMethod),
		kernel.CityFromString(dto.City),
		merchantID,
		deliveryManID,
		items,
		dto.OriginalTotalPrice,
		dto.TotalDiscount,
		dto.TotalPrice,
		dto.MerchantEarning,
		dto.CreatedAt,
		dto.DeliveredAt,
		dto.DeliveryDate,
		dto.PreviousDeliveryDate,
		dto.DelayReason,
	)
}
