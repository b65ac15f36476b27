package commands_test

import (
	"context"
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMenuUoW struct{ mock.Mock }

func (m *MockMenuUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

func TestNewAddMenuItemCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewAddMenuItemCommand("Tomato Egg Stir-fry", "A weeknight staple", "tomato-egg.jpg", 15, "tomato, egg, scallion")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Tomato Egg Stir-fry", cmd.Name())
		assert.Equal(t, 15, cmd.PreparationTime())
		assert.Equal(t, "tomato, egg, scallion", cmd.Ingredients())
	})

	t.Run("should default preparation time when missing", func(t *testing.T) {
		for _, minutes := range []int{0, -5} {
			cmd, err := commands.NewAddMenuItemCommand("Steamed Egg", "", "egg.jpg", minutes, "")

			require.NoError(t, err)
			assert.Equal(t, 30, cmd.PreparationTime())
		}
	})

	t.Run("should fail without name", func(t *testing.T) {
		_, err := commands.NewAddMenuItemCommand("", "", "egg.jpg", 20, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without image", func(t *testing.T) {
		_, err := commands.NewAddMenuItemCommand("Steamed Egg", "", "", 20, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed command fails validation", func(t *testing.T) {
		var cmd commands.AddMenuItemCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrAddMenuItemCommandIsNotConstructed, err)
	})
}

func TestAddMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddMenuItemCommand("Braised Pork Belly", "Slow-cooked, sweet and savory", "pork-belly.jpg", 90, "pork belly, soy sauce, rock sugar")

	repo := new(MockMenuItemRepository)
	uow := new(MockMenuUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*menu.Item")).
			Run(func(args mock.Arguments) {
				item := args.Get(1).(*menu.Item)
				item.ID = 12
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddMenuItemCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	require.Len(t, repo.Calls, 1)
	added := repo.Calls[0].Arguments.Get(1).(*menu.Item)
	assert.Equal(t, "Braised Pork Belly", added.Name)
	assert.True(t, added.Available)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
