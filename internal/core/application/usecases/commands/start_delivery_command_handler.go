package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"
)

// StartDeliveryCommandHandler handles the courier's start-of-transit
// transition. The courier may only start their own non-canceled deliveries;
// a missing, canceled or foreign delivery is reported as not found without
// revealing which case applies.
//
// Schedule rules for the pickup time:
//   - Must not lie more than DefaultStartTolerance in the past; the small
//     window absorbs clock skew between the courier's device and the server
//   - Must fall inside the configured office hours
//
// The courier's daily quota is enforced against the pickup day at start
// time, since unscheduled shipments consume quota only when they start.
type StartDeliveryCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	officeHours kernel.OfficeHours
	quota       services.QuotaChecker
	now         func() time.Time
}

// NewStartDeliveryCommandHandler creates a handler for start transitions.
// A nil now function defaults to time.Now.
func NewStartDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	officeHours kernel.OfficeHours,
	quota services.QuotaChecker,
	now func() time.Time,
) StartDeliveryCommandHandler {
	if now == nil {
		now = time.Now
	}

	return StartDeliveryCommandHandler{
		uowFactory:  uowFactory,
		officeHours: officeHours,
		quota:       quota,
		now:         now,
	}
}

// Handle processes the start command. On success the delivery carries the
// requested start date and is in InTransit state.
func (h *StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if kernel.InPastBeyondTolerance(cmd.StartDate(), h.now(), kernel.DefaultStartTolerance) {
		return errs.NewScheduleIsInvalidError("startDate", "date is in the past")
	}

	if !h.officeHours.Contains(cmd.StartDate()) {
		return errs.NewScheduleIsInvalidError("startDate",
			"deliveries are allowed from "+h.officeHours.Describe())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	started, err := deliveryRepo.GetForCourier(ctx, cmd.DeliveryID(), cmd.CourierID())
	if err != nil {
		return err
	}

	courier, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = h.quota.EnsureCapacity(ctx, deliveryRepo, courier, cmd.StartDate()); err != nil {
		return err
	}

	if err = started.Start(cmd.StartDate()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, started); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
