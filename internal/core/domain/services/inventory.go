package services

import (
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// StockAdjustment is one product's stock movement for a delivered order:
// stockQuantity decreases and deliveredCount increases by Quantity.
type StockAdjustment struct {
	ProductID kernel.UUID
	Quantity  int
}

// InventoryPlanner derives the stock adjustments a delivery requires.
// Free items are excluded entirely: they occupy an order line for display
// and audit but never touch stock or earnings.
//
// The planner is pure; the repository applies each adjustment with a
// conditional decrement that fails the whole delivery if any product's
// remaining stock is insufficient, so stock can never go negative even
// when concurrent deliveries race on the same product.
type InventoryPlanner struct{}

// NewInventoryPlanner creates an InventoryPlanner instance.
func NewInventoryPlanner() InventoryPlanner {
	return InventoryPlanner{}
}

// Plan returns one adjustment per distinct non-free product, with
// quantities of repeated lines merged.
func (InventoryPlanner) Plan(items []order.Item) []StockAdjustment {
	adjustments := make([]StockAdjustment, 0, len(items))
	index := make(map[kernel.UUID]int)

	for _, item := range items {
		if item.IsFree() {
			continue
		}

		if i, ok := index[item.ProductID()]; ok {
			adjustments[i].Quantity += item.Quantity()
			continue
		}

		index[item.ProductID()] = len(adjustments)
		adjustments = append(adjustments, StockAdjustment{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
		})
	}

	return adjustments
}
