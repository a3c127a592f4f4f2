package commands_test

import (
	"errors"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/delivery"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/problem"
	"shipping/internal/notifications"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveProblemCommand(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.ResolveProblemCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrResolveProblemCommandIsNotConstructed)
	})
}

func TestResolveProblemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	courierFixture := testCourier(t)
	resolved := testDelivery(t, courierFixture.ID(), nil)
	reported, err := problem.NewProblem(
		kernel.NewUUID(), resolved.ID(), "Recipient was absent at the address", 10)
	require.NoError(t, err)

	cmd, err := commands.NewResolveProblemCommand(reported.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	problemRepo := new(MockProblemRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockProblemUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProblemRepository").Return(problemRepo).Once(),
		problemRepo.On("Get", ctx, reported.ID()).Return(reported, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, resolved.ID()).Return(resolved, nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, courierFixture.ID()).Return(courierFixture, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("ProblemRepository").Return(problemRepo).Once(),
		problemRepo.On("Delete", ctx, reported.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProblemUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := &DispatcherRecorder{}
	handler := commands.NewResolveProblemCommandHandler(factory, dispatcher, fixedClock)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Canceled, resolved.Status())

	require.Len(t, dispatcher.Sent, 1)
	assert.Equal(t, notifications.KindCancellation, dispatcher.Sent[0].Kind)
	assert.Equal(t, "john@example.com", dispatcher.Sent[0].CourierEmail)
	assert.Equal(t, "Recipient was absent at the address", dispatcher.Sent[0].Reason)

	problemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestResolveProblemCommandHandler_Handle_ProblemNotFound(t *testing.T) {
	ctx := t.Context()

	problemID := kernel.NewUUID()
	cmd, err := commands.NewResolveProblemCommand(problemID)
	require.NoError(t, err)

	problemRepo := new(MockProblemRepository)
	uow := new(MockProblemUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProblemRepository").Return(problemRepo).Once(),
		problemRepo.On("Get", ctx, problemID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProblemUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := &DispatcherRecorder{}
	handler := commands.NewResolveProblemCommandHandler(factory, dispatcher, fixedClock)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, dispatcher.Sent)
}

func TestResolveProblemCommandHandler_Handle_AlreadyCanceledDelivery(t *testing.T) {
	ctx := t.Context()

	courierFixture := testCourier(t)
	canceled := testDelivery(t, courierFixture.ID(), nil)
	require.NoError(t, canceled.Cancel(testClock.Add(-time.Hour)))

	reported, err := problem.NewProblem(
		kernel.NewUUID(), canceled.ID(), "Recipient was absent at the address", 10)
	require.NoError(t, err)

	cmd, err := commands.NewResolveProblemCommand(reported.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	problemRepo := new(MockProblemRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockProblemUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProblemRepository").Return(problemRepo).Once(),
		problemRepo.On("Get", ctx, reported.ID()).Return(reported, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, canceled.ID()).Return(canceled, nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, courierFixture.ID()).Return(courierFixture, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProblemUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := &DispatcherRecorder{}
	handler := commands.NewResolveProblemCommandHandler(factory, dispatcher, fixedClock)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, delivery.ErrDeliveryAlreadyCanceled)
	problemRepo.AssertNotCalled(t, "Delete")
	assert.Empty(t, dispatcher.Sent)
}

func TestResolveProblemCommandHandler_Handle_CommitErrorDoesNotNotify(t *testing.T) {
	ctx := t.Context()

	courierFixture := testCourier(t)
	resolved := testDelivery(t, courierFixture.ID(), nil)
	reported, err := problem.NewProblem(
		kernel.NewUUID(), resolved.ID(), "Recipient was absent at the address", 10)
	require.NoError(t, err)

	cmd, err := commands.NewResolveProblemCommand(reported.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	problemRepo := new(MockProblemRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockProblemUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProblemRepository").Return(problemRepo).Once(),
		problemRepo.On("Get", ctx, reported.ID()).Return(reported, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, resolved.ID()).Return(resolved, nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, courierFixture.ID()).Return(courierFixture, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("ProblemRepository").Return(problemRepo).Once(),
		problemRepo.On("Delete", ctx, reported.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProblemUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := &DispatcherRecorder{}
	handler := commands.NewResolveProblemCommandHandler(factory, dispatcher, fixedClock)

	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	assert.Empty(t, dispatcher.Sent)
}
