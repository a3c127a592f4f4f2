// Package filerepo provides persistence for uploaded signature files.
// Completion attaches a signature by reference, so the core only needs an
// existence check against the uploaded files table.
package filerepo

import (
	"time"

	"github.com/google/uuid"
)

// SignatureDTO represents the database structure for uploaded signature files.
// The binary content lives in object storage; the row records the reference
// and original file name.
type SignatureDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Path      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
}

// TableName specifies the database table name for signature file entities.
func (SignatureDTO) TableName() string {
	return "signatures"
}
