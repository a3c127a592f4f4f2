package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/problem"
)

// ProblemRepository defines the persistence contract for delivery problem
// reports. Problems are created on report and removed when an operator
// resolves them by cancelling the delivery.
type ProblemRepository interface {
	// Add persists a new problem report.
	Add(ctx context.Context, aggregate *problem.Problem) error

	// Get retrieves a problem report by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*problem.Problem, error)

	// Delete removes a problem report. Used when resolving a problem
	// through delivery cancellation.
	Delete(ctx context.Context, id kernel.UUID) error
}
