package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"kitchen/internal/core/application/notifications"
	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/user"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mocks shared by the command handler tests in this package.

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Get(ctx context.Context, id int64) (*menu.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Item), args.Error(1)
}

func (m *MockMenuItemRepository) Add(ctx context.Context, item *menu.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

type MockPlacementUoW struct{ mock.Mock }

func (m *MockPlacementUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlacementUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlacementUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlacementUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockPlacementUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockPlacementUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

type MockPlacementUoWFactory struct{ mock.Mock }

func (m *MockPlacementUoWFactory) Create() commands.PlacementUoW {
	args := m.Called()
	return args.Get(0).(commands.PlacementUoW)
}

// RecordingPublisher captures broadcast events for assertions.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []notifications.Event
}

func (p *RecordingPublisher) Broadcast(event notifications.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *RecordingPublisher) Events() []notifications.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]notifications.Event, len(p.events))
	copy(out, p.events)
	return out
}

func memberUser() *user.User {
	return &user.User{ID: 3, Username: "maya", Name: "Maya", Role: user.Member}
}

func availableItem() *menu.Item {
	return &menu.Item{ID: 2, Name: "Braised Pork", Image: "pork.jpg", Available: true}
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(3, 2, 2, "less spicy")

	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockPlacementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, int64(3)).Return(memberUser(), nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", mock.Anything, int64(2)).Return(availableItem(), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				o := args.Get(1).(*order.Order)
				require.NoError(t, o.AssignID(42))
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(RecordingPublisher)

	h := commands.NewPlaceOrderCommandHandler(factory, publisher)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	events := publisher.Events()
	require.Len(t, events, 1)
	created, ok := events[0].(notifications.OrderCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, int64(42), created.Order.ID)
	assert.Equal(t, "pending", created.Order.Status)
	assert.Equal(t, "Maya", created.Order.UserName)
	assert.Equal(t, "Braised Pork", created.Order.ItemName)
	assert.Equal(t, "pork.jpg", created.Order.ItemImage)
	assert.Equal(t, created.Order.CreatedAt, created.Order.UpdatedAt)

	orderRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly

	factory := new(MockPlacementUoWFactory)
	publisher := new(RecordingPublisher)
	h := commands.NewPlaceOrderCommandHandler(factory, publisher)

	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Empty(t, publisher.Events())
}

func TestPlaceOrderCommandHandler_Handle_ChefMayNotOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(1, 2, 1, "")

	chef := &user.User{ID: 1, Username: "dad", Name: "Dad", Role: user.Chef}
	userRepo := new(MockUserRepository)
	uow := new(MockPlacementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, int64(1)).Return(chef, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(RecordingPublisher)

	h := commands.NewPlaceOrderCommandHandler(factory, publisher)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRolePolicyViolation)
	assert.Contains(t, err.Error(), "chef")
	assert.Empty(t, publisher.Events())
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_UserNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(99, 2, 1, "")

	userRepo := new(MockUserRepository)
	uow := new(MockPlacementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, int64(99)).
			Return(nil, errs.NewObjectNotFoundError("userId", int64(99))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(RecordingPublisher)

	h := commands.NewPlaceOrderCommandHandler(factory, publisher)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, publisher.Events())
}

func TestPlaceOrderCommandHandler_Handle_ItemUnavailable(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(3, 2, 1, "")

	unavailable := &menu.Item{ID: 2, Name: "Seasonal Soup", Available: false}
	userRepo := new(MockUserRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockPlacementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, int64(3)).Return(memberUser(), nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", mock.Anything, int64(2)).Return(unavailable, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(RecordingPublisher)

	h := commands.NewPlaceOrderCommandHandler(factory, publisher)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrMenuItemUnavailable)
	assert.Empty(t, publisher.Events())
}

func TestPlaceOrderCommandHandler_Handle_CommitError_NoBroadcast(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(3, 2, 1, "")

	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockPlacementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, int64(3)).Return(memberUser(), nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", mock.Anything, int64(2)).Return(availableItem(), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				o := args.Get(1).(*order.Order)
				require.NoError(t, o.AssignID(42))
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(RecordingPublisher)

	h := commands.NewPlaceOrderCommandHandler(factory, publisher)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Empty(t, publisher.Events(), "nothing may be broadcast before a successful commit")
}
