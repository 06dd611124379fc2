package attemptrepo

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/attempt"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormAttemptRepository implements AttemptRepository using GORM.
type GormAttemptRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAttemptRepository creates a new GORM attempt repository.
func NewGormAttemptRepository(db *gorm.DB, tracker aggregateTracker) *GormAttemptRepository {
	return &GormAttemptRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append inserts a ledger entry, computing its attempt number inside the
// insert itself. Two transactions appending to the same order can both read
// the same max; the unique index on (order_id, number) fails the loser,
// which surfaces as a conflict and rolls the whole operation back.
func (r *GormAttemptRepository) Append(ctx context.Context, aggregate *attempt.Attempt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var deliveryManID any
	if id := aggregate.DeliveryMan(); id != nil {
		deliveryManID = id.Bytes()
	}

	err := r.db.WithContext(ctx).Exec(`
		INSERT INTO delivery_attempts
			(id, order_id, number, outcome, delivery_man_id, reason, notes, location, attempted_at)
		SELECT
			?, ?, COALESCE(MAX(number), 0) + 1, ?, ?, ?, ?, ?, ?
		FROM delivery_attempts
		WHERE order_id = ?
	`,
		aggregate.ID().Bytes(),
		aggregate.OrderID().Bytes(),
		aggregate.Outcome().String(),
		deliveryManID,
		aggregate.Reason(),
		aggregate.Notes(),
		aggregate.Location(),
		aggregate.AttemptedAt(),
		aggregate.OrderID().Bytes(),
	).Error
	if err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("delivery attempt", "concurrent append on the same order", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ListByOrder retrieves an order's full ledger sorted by attempt number.
func (r *GormAttemptRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*attempt.Attempt, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AttemptDTO
	err := r.db.WithContext(ctx).
		Order("number").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	attempts := make([]*attempt.Attempt, 0, len(dtos))
	for _, dto := range dtos {
		entry, restoreErr := toDomain(dto)
		if restoreErr != nil {
			return nil, restoreErr
		}
		attempts = append(attempts, entry)
	}

	return attempts, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode
}
