package commands

import (
	"context"
	"time"

	"shipping/internal/notifications"
)

// ResolveProblemCommandHandler handles problem resolution. Resolution is the
// one flow where cancellation notifies the courier: the delivery is canceled,
// the problem record is removed and a cancellation mail carrying the problem
// description is dispatched once the transaction has committed.
type ResolveProblemCommandHandler struct {
	uowFactory ProblemUoWFactory
	dispatcher notifications.Dispatcher
	now        func() time.Time
}

// NewResolveProblemCommandHandler creates a handler for problem resolution.
// A nil now function defaults to time.Now.
func NewResolveProblemCommandHandler(
	uowFactory ProblemUoWFactory,
	dispatcher notifications.Dispatcher,
	now func() time.Time,
) ResolveProblemCommandHandler {
	if now == nil {
		now = time.Now
	}

	return ResolveProblemCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		now:        now,
	}
}

// Handle processes the resolution command. An already-canceled or completed
// delivery rejects the cancellation and leaves the problem record in place.
func (h *ResolveProblemCommandHandler) Handle(ctx context.Context, cmd ResolveProblemCommand) error {
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

	resolved, err := uow.ProblemRepository().Get(ctx, cmd.ProblemID())
	if err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	canceled, err := deliveryRepo.Get(ctx, resolved.DeliveryID())
	if err != nil {
		return err
	}

	courier, err := uow.CourierRepository().Get(ctx, canceled.CourierID())
	if err != nil {
		return err
	}

	if err = canceled.Cancel(h.now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, canceled); err != nil {
		return err
	}

	if err = uow.ProblemRepository().Delete(ctx, resolved.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, notifications.Notification{
		Kind:         notifications.KindCancellation,
		CourierName:  courier.Name(),
		CourierEmail: courier.Email(),
		DeliveryID:   canceled.ID().String(),
		Product:      canceled.Product(),
		Reason:       resolved.Description(),
	})

	return nil
}
