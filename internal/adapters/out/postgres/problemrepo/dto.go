// Package problemrepo provides data transfer objects and mapping functions for
// problem report persistence.
package problemrepo

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/problem"

	"github.com/google/uuid"
)

// ProblemDTO represents the database structure for persisting problem reports.
// Indexed by delivery so the triage query can join reports to their delivery.
type ProblemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:text;not null"`
}

// TableName specifies the database table name for problem report entities.
func (ProblemDTO) TableName() string {
	return "problems"
}

// fromDomain converts a problem report to its database representation.
func fromDomain(aggregate *problem.Problem) ProblemDTO {
	return ProblemDTO{
		ID:          aggregate.ID().Bytes(),
		DeliveryID:  aggregate.DeliveryID().Bytes(),
		Description: aggregate.Description(),
	}
}

// toDomain converts a database DTO to a problem report. RestoreProblem skips
// the configured description minimum, which may have changed since the report
// was stored.
func toDomain(dto ProblemDTO) (*problem.Problem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}

	return problem.RestoreProblem(id, deliveryID, dto.Description)
}
