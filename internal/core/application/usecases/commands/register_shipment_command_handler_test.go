package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/notifications"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterShipmentCommand(t *testing.T) {
	t.Run("empty_product_is_rejected", func(t *testing.T) {
		_, err := commands.NewRegisterShipmentCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.RegisterShipmentCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterShipmentCommandIsNotConstructed)
	})
}

func TestRegisterShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	courierFixture := testCourier(t)
	recipientFixture := testRecipient(t)

	cmd, err := commands.NewRegisterShipmentCommand(
		kernel.NewUUID(), recipientFixture.ID(), courierFixture.ID(), "Office chair")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	courierRepo := new(MockCourierRepository)
	recipientRepo := new(MockRecipientRepository)
	uow := new(MockDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RecipientRepository").Return(recipientRepo).Once(),
		recipientRepo.On("Get", ctx, recipientFixture.ID()).Return(recipientFixture, nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, courierFixture.ID()).Return(courierFixture, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := &DispatcherRecorder{}
	handler := commands.NewRegisterShipmentCommandHandler(factory, dispatcher)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, dispatcher.Sent, 1)
	assert.Equal(t, notifications.KindNewAssignment, dispatcher.Sent[0].Kind)
	uow.AssertExpectations(t)
}

func TestRegisterShipmentCommandHandler_Handle_CourierNotFound(t *testing.T) {
	ctx := t.Context()

	recipientFixture := testRecipient(t)
	courierID := kernel.NewUUID()

	cmd, err := commands.NewRegisterShipmentCommand(
		kernel.NewUUID(), recipientFixture.ID(), courierID, "Office chair")
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	recipientRepo := new(MockRecipientRepository)
	uow := new(MockDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RecipientRepository").Return(recipientRepo).Once(),
		recipientRepo.On("Get", ctx, recipientFixture.ID()).Return(recipientFixture, nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, courierID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := &DispatcherRecorder{}
	handler := commands.NewRegisterShipmentCommandHandler(factory, dispatcher)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, dispatcher.Sent)
}
