package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
)

// SignatureRepository defines the read contract for recipient signature
// files. Completion attaches a signature by reference; the repository only
// needs to confirm the referenced file exists.
type SignatureRepository interface {
	// Exists reports whether a signature file with the given identifier
	// has been uploaded.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
