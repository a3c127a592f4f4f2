package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/delivery"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/notifications"
	"shipping/internal/pkg/errs"
)

// AdmitDeliveryResponse summarizes the admitted delivery together with the
// resolved recipient and courier, so the caller does not need a second read.
type AdmitDeliveryResponse struct {
	DeliveryID       kernel.UUID
	Product          string
	Status           delivery.Status
	StartDate        *time.Time
	RecipientName    string
	RecipientAddress string
	CourierName      string
	CourierEmail     string
}

// AdmitDeliveryCommandHandler handles the business logic for delivery admission.
// Validates the requested schedule, resolves the recipient and courier, enforces
// the courier's daily quota for the requested date and persists the delivery in
// Created state.
//
// Schedule rules for the requested start date:
//   - Must not lie in a past hour (minutes within the current hour are fine)
//   - Must fall inside the configured office hours on its own calendar day
//
// Example:
//
//	handler := NewAdmitDeliveryCommandHandler(uowFactory, officeHours, quota, dispatcher, nil)
//	cmd, _ := NewAdmitDeliveryCommand(deliveryID, recipientID, courierID, "Office chair", &start)
//
//	response, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrQuotaExceeded) {
//	    // Courier already has the configured maximum for that day
//	    return
//	}
type AdmitDeliveryCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	officeHours kernel.OfficeHours
	quota       services.QuotaChecker
	dispatcher  notifications.Dispatcher
	now         func() time.Time
}

// NewAdmitDeliveryCommandHandler creates a handler for delivery admission.
// A nil now function defaults to time.Now.
func NewAdmitDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	officeHours kernel.OfficeHours,
	quota services.QuotaChecker,
	dispatcher notifications.Dispatcher,
	now func() time.Time,
) AdmitDeliveryCommandHandler {
	if now == nil {
		now = time.Now
	}

	return AdmitDeliveryCommandHandler{
		uowFactory:  uowFactory,
		officeHours: officeHours,
		quota:       quota,
		dispatcher:  dispatcher,
		now:         now,
	}
}

// Handle processes the admission command. On success the delivery exists in
// Created state and the courier is notified about the new assignment after the
// transaction commits.
func (h *AdmitDeliveryCommandHandler) Handle(
	ctx context.Context, cmd AdmitDeliveryCommand,
) (AdmitDeliveryResponse, error) {
	if err := cmd.Validate(); err != nil {
		return AdmitDeliveryResponse{}, err
	}

	if err := h.validateSchedule(cmd.StartDate()); err != nil {
		return AdmitDeliveryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdmitDeliveryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	recipient, err := uow.RecipientRepository().Get(ctx, cmd.RecipientID())
	if err != nil {
		return AdmitDeliveryResponse{}, err
	}

	courier, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return AdmitDeliveryResponse{}, err
	}

	deliveryRepo := uow.DeliveryRepository()
	if cmd.StartDate() != nil {
		if err = h.quota.EnsureCapacity(ctx, deliveryRepo, courier, *cmd.StartDate()); err != nil {
			return AdmitDeliveryResponse{}, err
		}
	}

	admitted, err := delivery.NewDelivery(
		cmd.DeliveryID(), cmd.RecipientID(), cmd.CourierID(), cmd.Product(), cmd.StartDate())
	if err != nil {
		return AdmitDeliveryResponse{}, err
	}

	if err = deliveryRepo.Add(ctx, admitted); err != nil {
		return AdmitDeliveryResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AdmitDeliveryResponse{}, err
	}

	h.dispatcher.Dispatch(ctx, notifications.Notification{
		Kind:         notifications.KindNewAssignment,
		CourierName:  courier.Name(),
		CourierEmail: courier.Email(),
		DeliveryID:   admitted.ID().String(),
		Product:      admitted.Product(),
	})

	return AdmitDeliveryResponse{
		DeliveryID:       admitted.ID(),
		Product:          admitted.Product(),
		Status:           admitted.Status(),
		StartDate:        admitted.StartDate(),
		RecipientName:    recipient.Name(),
		RecipientAddress: recipient.Address(),
		CourierName:      courier.Name(),
		CourierEmail:     courier.Email(),
	}, nil
}

func (h *AdmitDeliveryCommandHandler) validateSchedule(startDate *time.Time) error {
	if startDate == nil {
		return nil
	}

	if kernel.InPastTruncatedToHour(*startDate, h.now()) {
		return errs.NewScheduleIsInvalidError("startDate", "date is in the past")
	}

	if !h.officeHours.Contains(*startDate) {
		return errs.NewScheduleIsInvalidError("startDate",
			"deliveries are allowed from "+h.officeHours.Describe())
	}

	return nil
}
