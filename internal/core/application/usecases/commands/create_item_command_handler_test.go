package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kioskhub/internal/core/application/usecases/commands"
	"kioskhub/internal/core/domain/model/catalog"
	"kioskhub/internal/pkg/errs"
)

func TestCreateItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateItemCommand(
		"mango-tango", "juice", "juice", "Mango Tango", "fresh mango", true,
	)
	require.NoError(t, err)

	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("SlugTaken", ctx, "mango-tango", mock.Anything).Return(false, nil).Once()
	catalogRepo.On("AddItem", mock.Anything, mock.AnythingOfType("*catalog.Item")).
		Return(nil).Once()

	uow := new(MockUnitOfWork)
	uow.On("CatalogRepository").Return(catalogRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow, nil).Once()

	h := commands.NewCreateItemCommandHandler(factory)
	item, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "mango-tango", item.Slug())
	assert.Equal(t, catalog.ItemTypeJuice, item.ItemType())
	catalogRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateItemCommandHandler_Handle_SlugTaken(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateItemCommand(
		"mango-tango", "juice", "juice", "Mango Tango", "", true,
	)
	require.NoError(t, err)

	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("SlugTaken", ctx, "mango-tango", mock.Anything).Return(true, nil).Once()

	uow := new(MockUnitOfWork)
	uow.On("CatalogRepository").Return(catalogRepo)

	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow, nil).Once()

	h := commands.NewCreateItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	catalogRepo.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything)
}

func TestNewCreateItemCommand_Invalid(t *testing.T) {
	t.Run("empty slug", func(t *testing.T) {
		_, err := commands.NewCreateItemCommand("", "juice", "juice", "Mango", "", true)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown item type", func(t *testing.T) {
		_, err := commands.NewCreateItemCommand("mango", "juice", "snack", "Mango", "", true)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("gift allowed on either kiosk type", func(t *testing.T) {
		_, err := commands.NewCreateItemCommand("plush-bear", "sweet", "gift", "Plush Bear", "", true)
		require.NoError(t, err)
	})
}
