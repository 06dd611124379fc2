package orderrepo

import (
	"context"
	"database/sql"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items to the database.
// A unique-violation on the order code means another transaction took the
// same per-city sequence first; the caller can retry with a fresh sequence.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("order code", "sequence already taken", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Line items are immutable
// and never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Omit("Items").
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its line items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// NextCodeSequence reserves the next per-city order sequence number.
// It locks the city's highest-sequence row so concurrent creators serialize;
// the unique index on (city, code_sequence) backstops the first order of a
// city, where there is no row to lock yet.
func (r *GormOrderRepository) NextCodeSequence(ctx context.Context, city kernel.City) (int, error) {
	if err := city.Validate(); err != nil {
		return 0, err
	}

	var last int
	row := r.db.WithContext(ctx).Raw(`
		SELECT code_sequence
		FROM orders
		WHERE city = ?
		ORDER BY code_sequence DESC
		LIMIT 1
		FOR UPDATE
	`, city.String()).Row()

	if err := row.Scan(&last); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, err
		}
		last = 0
	}

	return last + 1, nil
}

// ClaimForDelivery assigns an order to a delivery worker only if nobody
// else has claimed it. The conditional update is what makes concurrent
// claims safe: exactly one claimer matches the NULL check, the rest get
// a conflict.
func (r *GormOrderRepository) ClaimForDelivery(ctx context.Context, orderID, deliveryManID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), deliveryManID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND delivery_man_id IS NULL", orderID.Bytes()).
		Updates(map[string]any{
			"delivery_man_id": deliveryManID.Bytes(),
			"status":          order.AssignedToDelivery.String(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", "already claimed by another delivery worker")
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode
}
