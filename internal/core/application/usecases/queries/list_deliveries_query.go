// Package queries contains read-only projections over the delivery store.
// Query handlers bypass the aggregates and read with raw SQL for efficient
// list endpoints in the CQRS architecture.
package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
)

// ListDeliveriesQuery retrieves deliveries for the admin listing. An optional
// delivery ID narrows the result to a single record; canceled records are
// hidden unless explicitly requested.
//
// Example:
//
//	query, _ := NewListDeliveriesQuery(nil, false)
//	handler := NewListDeliveriesQueryHandler(db)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list deliveries: %w", err)
//	}
//	fmt.Printf("Found %d active deliveries\n", len(deliveries))
type ListDeliveriesQuery struct {
	deliveryID      *kernel.UUID
	includeCanceled bool

	guard guard.ConstructorGuard
}

// NewListDeliveriesQuery creates a delivery listing query. deliveryID is
// optional; includeCanceled controls whether soft-canceled records appear.
func NewListDeliveriesQuery(deliveryID *kernel.UUID, includeCanceled bool) (ListDeliveriesQuery, error) {
	listQuery := ListDeliveriesQuery{
		includeCanceled: includeCanceled,
		guard:           guard.NewConstructorGuard(),
	}

	if deliveryID != nil {
		if err := deliveryID.Validate(); err != nil {
			return ListDeliveriesQuery{}, err
		}
		id := *deliveryID
		listQuery.deliveryID = &id
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

// DeliveryID returns the optional single-record filter.
func (q ListDeliveriesQuery) DeliveryID() *kernel.UUID {
	return q.deliveryID
}

// IncludeCanceled reports whether soft-canceled deliveries are included.
func (q ListDeliveriesQuery) IncludeCanceled() bool {
	return q.includeCanceled
}

// ListDeliveriesQueryResponse represents one delivery row of the listing.
type ListDeliveriesQueryResponse struct {
	ID          kernel.UUID
	Product     string
	Status      string
	RecipientID kernel.UUID
	CourierID   kernel.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	CanceledAt  *time.Time
}
