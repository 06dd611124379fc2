// Package attemptrepo persists the delivery-attempt ledger. The table is
// append-only; nothing in the adapter updates or deletes rows.
package attemptrepo

import (
	"time"

	"orderflow/internal/core/domain/model/attempt"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AttemptDTO is the database representation of one ledger entry.
// The unique index on (order_id, number) is what keeps the numbering
// gapless under concurrent appends.
type AttemptDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID  `gorm:"type:uuid;index:idx_attempts_order_number,unique"`
	Number        int        `gorm:"index:idx_attempts_order_number,unique"`
	Outcome       string
	DeliveryManID *uuid.UUID `gorm:"type:uuid"`
	Reason        string
	Notes         string
	Location      string
	AttemptedAt   time.Time
}

// TableName overrides GORM's default naming to use "delivery_attempts".
func (AttemptDTO) TableName() string {
	return "delivery_attempts"
}

func toDomain(dto AttemptDTO) (*attempt.Attempt, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
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

	return attempt.RestoreAttempt(
		id,
		orderID,
		dto.Number,
		attempt.OutcomeFromString(dto.Outcome),
		deliveryManID,
		dto.Reason,
		dto.Notes,
		dto.Location,
		dto.AttemptedAt,
	)
}
