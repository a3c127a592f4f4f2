package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/delivery"
	"shipping/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Provides methods for storing, retrieving, and counting deliveries for
// lifecycle transitions and quota enforcement.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// The delivery must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Canceled deliveries are still returned; callers decide whether a
	// canceled record is acceptable for their operation.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForCourier retrieves a non-canceled delivery assigned to the
	// given courier. A missing, canceled or foreign delivery is an
	// object-not-found error; courier transitions must not reveal whether
	// the record exists for someone else.
	GetForCourier(ctx context.Context, id, courierID kernel.UUID) (*delivery.Delivery, error)

	// CountActiveForCourierOn counts the courier's non-canceled deliveries
	// whose start date falls on the calendar day of the given moment.
	// Satisfies the quota checker's counting contract.
	CountActiveForCourierOn(ctx context.Context, courierID kernel.UUID, day time.Time) (int64, error)
}
