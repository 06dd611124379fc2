package deliverymanrepo

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/deliveryman"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormDeliveryManRepository implements DeliveryManRepository using GORM.
type GormDeliveryManRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryManRepository creates a new GORM delivery-worker repository.
func NewGormDeliveryManRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryManRepository {
	return &GormDeliveryManRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery worker to the database.
func (r *GormDeliveryManRepository) Add(ctx context.Context, aggregate *deliveryman.DeliveryMan) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery worker by ID.
func (r *GormDeliveryManRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryman.DeliveryMan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryManDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery man", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// RecordSuccessfulDelivery bumps the worker's delivery counters and adds
// the earned fee, all as additive expressions.
func (r *GormDeliveryManRepository) RecordSuccessfulDelivery(
	ctx context.Context,
	id kernel.UUID,
	earning decimal.Decimal,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&DeliveryManDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"total_deliveries":      gorm.Expr("total_deliveries + 1"),
			"successful_deliveries": gorm.Expr("successful_deliveries + 1"),
			"total_earned":          gorm.Expr("total_earned + ?", earning),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery man", id.String())
	}

	return nil
}
