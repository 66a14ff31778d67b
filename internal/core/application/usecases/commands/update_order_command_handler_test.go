package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kioskhub/internal/core/application/usecases/commands"
	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/core/domain/model/order"
	"kioskhub/internal/core/ports"
	"kioskhub/internal/pkg/errs"
)

func TestNewUpdateOrderCommand(t *testing.T) {
	status := "completed"

	t.Run("status only", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderCommand(1, &status, nil)
		require.NoError(t, err)
		require.Equal(t, order.Completed, *cmd.Status())
	})

	t.Run("invalid status", func(t *testing.T) {
		bad := "done"
		_, err := commands.NewUpdateOrderCommand(1, &bad, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("no fields", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(1, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("survey can be cleared", func(t *testing.T) {
		var cleared kernel.Document
		cmd, err := commands.NewUpdateOrderCommand(1, nil, &cleared)
		require.NoError(t, err)
		require.NotNil(t, cmd.SurveyResponse())
	})
}

func TestUpdateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	status := "canceled"
	cmd, err := commands.NewUpdateOrderCommand(42, &status, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("ApplyPatch", mock.Anything, int64(42), mock.AnythingOfType("ports.OrderPatch")).
		Return(nil).Once()

	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow, nil).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	status := "completed"
	cmd, err := commands.NewUpdateOrderCommand(42, &status, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("ApplyPatch", mock.Anything, int64(42), mock.Anything).
		Return(errs.NewObjectNotFoundError("order", 42)).Once()

	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow, nil).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	survey := kernel.Document{"rating": float64(5)}
	cmd, err := commands.NewUpdateOrderCommand(42, nil, &survey)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("ApplyPatch", mock.Anything, int64(42), ports.OrderPatch{SurveyResponse: &survey}).
		Return(nil).Once()

	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow, nil).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}
