// Package courierrepo provides data transfer objects and mapping functions for
// courier persistence. Courier management lives outside the shipping core, so
// the repository only reads the reference data the core needs.
package courierrepo

import (
	"shipping/internal/core/domain/model/courier"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier references.
type CourierDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Email string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// toDomain converts a database DTO to a courier reference.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.NewCourier(id, dto.Name, dto.Email)
}
