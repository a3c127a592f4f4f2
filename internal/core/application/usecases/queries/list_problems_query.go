package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrListProblemsQueryIsNotConstructed = errors.New(
	"ListProblemsQuery must be created via NewListProblemsQuery constructor",
)

// ListProblemsQuery retrieves problem reports enriched with the delivery and
// courier they concern. An optional delivery ID narrows the result to the
// reports of a single delivery.
type ListProblemsQuery struct {
	deliveryID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListProblemsQuery creates a problem listing query. deliveryID is
// optional.
func NewListProblemsQuery(deliveryID *kernel.UUID) (ListProblemsQuery, error) {
	listQuery := ListProblemsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if deliveryID != nil {
		if err := deliveryID.Validate(); err != nil {
			return ListProblemsQuery{}, err
		}
		id := *deliveryID
		listQuery.deliveryID = &id
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q ListProblemsQuery) Validate() error {
	return q.guard.Validate(ErrListProblemsQueryIsNotConstructed)
}

// DeliveryID returns the optional delivery filter.
func (q ListProblemsQuery) DeliveryID() *kernel.UUID {
	return q.deliveryID
}

// ListProblemsQueryResponse represents one problem report joined with its
// delivery and courier for operator triage.
type ListProblemsQueryResponse struct {
	ID           kernel.UUID
	DeliveryID   kernel.UUID
	Description  string
	Product      string
	StartDate    *time.Time
	EndDate      *time.Time
	CourierName  string
	CourierEmail string
}
