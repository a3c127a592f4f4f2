package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrListCourierDeliveriesQueryIsNotConstructed = errors.New(
	"ListCourierDeliveriesQuery must be created via NewListCourierDeliveriesQuery constructor",
)

// ListCourierDeliveriesQuery retrieves one courier's workload. The delivered
// flag selects between the pending view (no end date, not canceled) and the
// history view (end date set).
//
// Example:
//
//	query, _ := NewListCourierDeliveriesQuery(courierID, false)
//	pending, err := handler.Handle(ctx, query)
type ListCourierDeliveriesQuery struct {
	courierID kernel.UUID
	delivered bool

	guard guard.ConstructorGuard
}

// NewListCourierDeliveriesQuery creates a courier workload query.
func NewListCourierDeliveriesQuery(courierID kernel.UUID, delivered bool) (ListCourierDeliveriesQuery, error) {
	listQuery := ListCourierDeliveriesQuery{
		delivered: delivered,
		guard:     guard.NewConstructorGuard(),
	}

	if err := courierID.Validate(); err != nil {
		return ListCourierDeliveriesQuery{}, err
	}
	listQuery.courierID = courierID

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCourierDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListCourierDeliveriesQueryIsNotConstructed)
}

// CourierID returns the courier whose deliveries are listed.
func (q ListCourierDeliveriesQuery) CourierID() kernel.UUID {
	return q.courierID
}

// Delivered reports whether the history view was requested.
func (q ListCourierDeliveriesQuery) Delivered() bool {
	return q.delivered
}

// ListCourierDeliveriesQueryResponse represents one row of a courier's
// workload.
type ListCourierDeliveriesQueryResponse struct {
	ID          kernel.UUID
	Product     string
	Status      string
	RecipientID kernel.UUID
	StartDate   *time.Time
	EndDate     *time.Time
}
