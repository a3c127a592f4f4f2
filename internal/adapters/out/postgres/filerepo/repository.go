package filerepo

import (
	"context"

	"shipping/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormSignatureRepository implements SignatureRepository using GORM.
type GormSignatureRepository struct {
	db *gorm.DB
}

// NewGormSignatureRepository creates a new GORM signature repository.
func NewGormSignatureRepository(db *gorm.DB) *GormSignatureRepository {
	return &GormSignatureRepository{db: db}
}

// Exists reports whether a signature file with the given identifier has been uploaded.
func (r *GormSignatureRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&SignatureDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
