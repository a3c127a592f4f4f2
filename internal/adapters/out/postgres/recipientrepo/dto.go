// Package recipientrepo provides data transfer objects and mapping functions
// for recipient persistence. Like couriers, recipients are managed elsewhere;
// the shipping core only resolves them by reference.
package recipientrepo

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/recipient"

	"github.com/google/uuid"
)

// RecipientDTO represents the database structure for persisting recipient references.
type RecipientDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Address string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for recipient entities.
func (RecipientDTO) TableName() string {
	return "recipients"
}

// toDomain converts a database DTO to a recipient reference.
func toDomain(dto RecipientDTO) (*recipient.Recipient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return recipient.NewRecipient(id, dto.Name, dto.Address)
}
