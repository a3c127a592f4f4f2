package commands

import (
	"context"

	"shipping/internal/core/domain/model/delivery"
	"shipping/internal/notifications"
)

// RegisterShipmentCommandHandler handles unscheduled shipment registration.
// Resolves recipient and courier, persists the delivery without a start date
// and notifies the courier about the new assignment.
type RegisterShipmentCommandHandler struct {
	uowFactory DeliveryUoWFactory
	dispatcher notifications.Dispatcher
}

// NewRegisterShipmentCommandHandler creates a handler for shipment registration.
func NewRegisterShipmentCommandHandler(
	uowFactory DeliveryUoWFactory,
	dispatcher notifications.Dispatcher,
) RegisterShipmentCommandHandler {
	return RegisterShipmentCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the registration command. The delivery is created in
// Created state with no schedule; quota and office hours are deferred to the
// courier's start transition.
func (h *RegisterShipmentCommandHandler) Handle(ctx context.Context, cmd RegisterShipmentCommand) error {
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

	if _, err := uow.RecipientRepository().Get(ctx, cmd.RecipientID()); err != nil {
		return err
	}

	courier, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	shipment, err := delivery.NewDelivery(
		cmd.DeliveryID(), cmd.RecipientID(), cmd.CourierID(), cmd.Product(), nil)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, shipment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, notifications.Notification{
		Kind:         notifications.KindNewAssignment,
		CourierName:  courier.Name(),
		CourierEmail: courier.Email(),
		DeliveryID:   shipment.ID().String(),
		Product:      shipment.Product(),
	})

	return nil
}
