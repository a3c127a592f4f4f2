package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/domain/model/delivery"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
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

// Update saves an existing delivery to the database.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by ID. Canceled deliveries are still returned;
// callers decide whether a canceled record is acceptable.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForCourier retrieves a non-canceled delivery assigned to the given
// courier. Missing, canceled and foreign deliveries all surface as the same
// not-found error so courier transitions reveal nothing about other records.
func (r *GormDeliveryRepository) GetForCourier(ctx context.Context, id, courierID kernel.UUID) (*delivery.Delivery, error) {
	if err := errors.Join(id.Validate(), courierID.Validate()); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND courier_id = ? AND canceled_at IS NULL", id.Bytes(), courierID.Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountActiveForCourierOn counts the courier's non-canceled deliveries whose
// start date falls on the calendar day of the given moment. Feeds the daily
// quota check.
func (r *GormDeliveryRepository) CountActiveForCourierOn(
	ctx context.Context,
	courierID kernel.UUID,
	day time.Time,
) (int64, error) {
	if err := courierID.Validate(); err != nil {
		return 0, err
	}

	dayStart, dayEnd := kernel.DayInterval(day)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("courier_id = ?", courierID.Bytes()).
		Where("canceled_at IS NULL").
		Where("start_date BETWEEN ? AND ?", dayStart, dayEnd).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
