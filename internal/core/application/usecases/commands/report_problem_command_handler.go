package commands

import (
	"context"

	"shipping/internal/core/domain/model/problem"
)

// ReportProblemCommandHandler handles delivery problem reports. The delivery
// must exist; its lifecycle state does not matter, a problem can even be
// reported against an already-completed delivery.
type ReportProblemCommandHandler struct {
	uowFactory           ProblemUoWFactory
	minDescriptionLength int
}

// NewReportProblemCommandHandler creates a handler for problem reports with
// the configured minimum description length. A non-positive minimum falls
// back to the domain default.
func NewReportProblemCommandHandler(uowFactory ProblemUoWFactory, minDescriptionLength int) ReportProblemCommandHandler {
	return ReportProblemCommandHandler{
		uowFactory:           uowFactory,
		minDescriptionLength: minDescriptionLength,
	}
}

// Handle processes the report command.
func (h *ReportProblemCommandHandler) Handle(ctx context.Context, cmd ReportProblemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	reported, err := problem.NewProblem(cmd.ProblemID(), cmd.DeliveryID(), cmd.Description(), h.minDescriptionLength)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.DeliveryRepository().Get(ctx, cmd.DeliveryID()); err != nil {
		return err
	}

	if err = uow.ProblemRepository().Add(ctx, reported); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
