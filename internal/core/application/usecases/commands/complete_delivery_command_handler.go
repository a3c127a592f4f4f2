package commands

import (
	"context"

	"shipping/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler handles the courier's end-of-transit
// transition. Completion requires a started, non-canceled delivery assigned
// to the requesting courier, an end date strictly after the start date and a
// signature file that has actually been uploaded.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for completion
// transitions.
func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command. On success the delivery carries
// the end date and signature reference and is in Completed state.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	completed, err := deliveryRepo.GetForCourier(ctx, cmd.DeliveryID(), cmd.CourierID())
	if err != nil {
		return err
	}

	exists, err := uow.SignatureRepository().Exists(ctx, cmd.SignatureID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("signature", cmd.SignatureID().String())
	}

	if err = completed.Complete(cmd.EndDate(), cmd.SignatureID()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, completed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
