// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// This package implements the repository pattern for the delivery domain aggregate, handling
// the conversion between domain entities and database representations.
package deliveryrepo

import (
	"time"

	"shipping/internal/core/domain/model/delivery"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// Maps delivery domain entities to relational database tables with indexing for
// the courier workload and daily quota queries.
type DeliveryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Product     string     `gorm:"type:varchar(255);not null"`
	Status      int        `gorm:"type:int;not null"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CourierID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartDate   *time.Time `gorm:"index"`
	EndDate     *time.Time
	SignatureID *uuid.UUID `gorm:"type:uuid"`
	CanceledAt  *time.Time `gorm:"index"`
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
// Maps all delivery attributes including the optional lifecycle timestamps.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var signatureID *uuid.UUID
	if id := aggregate.SignatureID(); id != nil {
		raw := id.Bytes()
		signatureID = &raw
	}

	return DeliveryDTO{
		ID:          aggregate.ID().Bytes(),
		Product:     aggregate.Product(),
		Status:      int(aggregate.Status()),
		RecipientID: aggregate.RecipientID().Bytes(),
		CourierID:   aggregate.CourierID().Bytes(),
		StartDate:   copyTime(aggregate.StartDate()),
		EndDate:     copyTime(aggregate.EndDate()),
		SignatureID: signatureID,
		CanceledAt:  copyTime(aggregate.CanceledAt()),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete aggregate including its lifecycle state using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	var signatureID *kernel.UUID
	if dto.SignatureID != nil {
		sID, sigErr := kernel.UUIDFromBytes((*dto.SignatureID)[:])
		if sigErr != nil {
			return nil, sigErr
		}

		signatureID = &sID
	}

	return delivery.RestoreDelivery(
		id,
		recipientID,
		courierID,
		dto.Product,
		delivery.Status(dto.Status),
		dto.StartDate,
		dto.EndDate,
		signatureID,
		dto.CanceledAt,
	)
}

// copyTime duplicates an optional timestamp so the DTO does not alias the aggregate.
func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
