package ports

import (
	"context"

	"shipping/internal/core/domain/model/courier"
	"shipping/internal/core/domain/model/kernel"
)

// CourierRepository defines the read contract for courier references.
// Courier management lives outside this system; the shipping core only
// resolves couriers for existence checks, quota errors and notifications.
type CourierRepository interface {
	// Get retrieves a courier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
}
