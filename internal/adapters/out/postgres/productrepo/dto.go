// Package productrepo persists the product catalog. Stock decrements go
// through a conditional update so two concurrent deliveries can never drive
// stock negative.
package productrepo

import (
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the database representation of a catalog product.
type ProductDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string
	Price          decimal.Decimal `gorm:"type:numeric(12,2)"`
	StockQuantity  int
	DeliveredCount int
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Price:          aggregate.Price(),
		StockQuantity:  aggregate.StockQuantity(),
		DeliveredCount: aggregate.DeliveredCount(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Price, dto.StockQuantity, dto.DeliveredCount)
}
