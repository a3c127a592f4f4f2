package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/recipient"
)

// RecipientRepository defines the read contract for recipient references.
type RecipientRepository interface {
	// Get retrieves a recipient by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error)
}
