package queries

import (
	"context"
	"database/sql"

	"orderflow/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetOrderTimelineQueryHandler reads an order's attempt ledger from the
// database. Entries come back sorted by attempt number, which matches
// the order they were appended in.
type GetOrderTimelineQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTimelineQueryHandler creates a handler for timeline queries.
func NewGetOrderTimelineQueryHandler(db *gorm.DB) GetOrderTimelineQueryHandler {
	return GetOrderTimelineQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTimelineQuery,
) ([]GetOrderTimelineQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetOrderTimelineQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			outcome,
			delivery_man_id,
			reason,
			notes,
			location,
			attempted_at
		FROM delivery_attempts
		WHERE order_id = ?
		ORDER BY number
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetOrderTimelineQueryResponse
		var deliveryManID sql.NullString

		err = rows.Scan(
			&entry.Number,
			&entry.Outcome,
			&deliveryManID,
			&entry.Reason,
			&entry.Notes,
			&entry.Location,
			&entry.AttemptedAt,
		)
		if err != nil {
			return nil, err
		}

		if deliveryManID.Valid {
			workerID, idErr := kernel.UUIDFromString(deliveryManID.String)
			if idErr != nil {
				return nil, idErr
			}
			entry.DeliveryManID = &workerID
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
