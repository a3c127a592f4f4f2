package commands

import (
	"context"
	"time"
)

// CancelDeliveryCommandHandler handles administrative cancellation. The
// record is kept with its cancellation timestamp; repeated cancels and
// cancels of completed deliveries are rejected by the aggregate.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	now        func() time.Time
}

// NewCancelDeliveryCommandHandler creates a handler for admin cancels.
// A nil now function defaults to time.Now.
func NewCancelDeliveryCommandHandler(uowFactory DeliveryUoWFactory, now func() time.Time) CancelDeliveryCommandHandler {
	if now == nil {
		now = time.Now
	}

	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the cancel command. No notification is sent; couriers are
// only mailed when a cancellation resolves a reported problem.
func (h *CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
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
	canceled, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = canceled.Cancel(h.now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, canceled); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
