package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/courier"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/notifications"
	"shipping/internal/pkg/errs"
)

// EditDeliveryCommandHandler handles administrative edits of a delivery.
// Each provided field is validated with the same rules the original
// transition would apply:
//   - A new start date re-runs the hour-truncated past check and office hours
//   - A new end date must fall strictly after the possibly-updated start date
//   - A new courier re-runs the daily quota against the delivery's start day
//     and is notified about the assignment; an unchanged courier is not
//   - A new signature reference must resolve to an uploaded file
type EditDeliveryCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	officeHours kernel.OfficeHours
	quota       services.QuotaChecker
	dispatcher  notifications.Dispatcher
	now         func() time.Time
}

// NewEditDeliveryCommandHandler creates a handler for admin edits.
// A nil now function defaults to time.Now.
func NewEditDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	officeHours kernel.OfficeHours,
	quota services.QuotaChecker,
	dispatcher notifications.Dispatcher,
	now func() time.Time,
) EditDeliveryCommandHandler {
	if now == nil {
		now = time.Now
	}

	return EditDeliveryCommandHandler{
		uowFactory:  uowFactory,
		officeHours: officeHours,
		quota:       quota,
		dispatcher:  dispatcher,
		now:         now,
	}
}

// Handle processes the edit command. Changes are applied in dependency order
// so ordering rules always run against the final field values.
func (h *EditDeliveryCommandHandler) Handle(ctx context.Context, cmd EditDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	changes := cmd.Changes()
	if changes.StartDate != nil {
		if kernel.InPastTruncatedToHour(*changes.StartDate, h.now()) {
			return errs.NewScheduleIsInvalidError("startDate", "date is in the past")
		}
		if !h.officeHours.Contains(*changes.StartDate) {
			return errs.NewScheduleIsInvalidError("startDate",
				"deliveries are allowed from "+h.officeHours.Describe())
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	edited, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if changes.Product != nil {
		if err = edited.ChangeProduct(*changes.Product); err != nil {
			return err
		}
	}

	if changes.RecipientID != nil {
		if _, err = uow.RecipientRepository().Get(ctx, *changes.RecipientID); err != nil {
			return err
		}
		if err = edited.ChangeRecipient(*changes.RecipientID); err != nil {
			return err
		}
	}

	if changes.StartDate != nil {
		if err = edited.Reschedule(*changes.StartDate); err != nil {
			return err
		}
	}

	var newCourier *courier.Courier
	if changes.CourierID != nil && !edited.IsAssignedTo(*changes.CourierID) {
		newCourier, err = uow.CourierRepository().Get(ctx, *changes.CourierID)
		if err != nil {
			return err
		}

		if edited.StartDate() != nil {
			if err = h.quota.EnsureCapacity(ctx, deliveryRepo, newCourier, *edited.StartDate()); err != nil {
				return err
			}
		}

		if err = edited.ChangeCourier(*changes.CourierID); err != nil {
			return err
		}
	}

	if changes.SignatureID != nil {
		var exists bool
		exists, err = uow.SignatureRepository().Exists(ctx, *changes.SignatureID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewObjectNotFoundError("signature", changes.SignatureID.String())
		}
		if err = edited.AttachSignature(*changes.SignatureID); err != nil {
			return err
		}
	}

	if changes.EndDate != nil {
		if err = edited.SetEndDate(*changes.EndDate); err != nil {
			return err
		}
	}

	if err = deliveryRepo.Update(ctx, edited); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if newCourier != nil {
		h.dispatcher.Dispatch(ctx, notifications.Notification{
			Kind:         notifications.KindNewAssignment,
			CourierName:  newCourier.Name(),
			CourierEmail: newCourier.Email(),
			DeliveryID:   edited.ID().String(),
			Product:      edited.Product(),
		})
	}

	return nil
}
