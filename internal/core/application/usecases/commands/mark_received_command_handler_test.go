package commands_test

import (
	"context"
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkReceivedCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	aggregate := pendingParcel(t)
	cmd, err := commands.NewMarkReceivedCommand(aggregate.ID(), "agent-7")
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	dispatcher := new(MockDispatcher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		dispatcher.On("Send", ctx, ports.NotificationParcelReceived, aggregate).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkReceivedCommandHandler(factory, dispatcher)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, parcel.StatusReceived, aggregate.LogisticStatus())
	assert.NotNil(t, aggregate.ReceivedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestMarkReceivedCommandHandler_Handle_AlreadyReceived(t *testing.T) {
	ctx := context.Background()
	aggregate := receivedParcel(t)
	cmd, err := commands.NewMarkReceivedCommand(aggregate.ID(), "agent-7")
	require.NoError(t, err)

	historyBefore := aggregate.History().Len()

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	dispatcher := new(MockDispatcher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkReceivedCommandHandler(factory, dispatcher)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, parcel.ErrInvalidTransition)
	assert.Equal(t, historyBefore, aggregate.History().Len())
	dispatcher.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkReceivedCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	aggregate := pendingParcel(t)
	cmd, err := commands.NewMarkReceivedCommand(aggregate.ID(), "agent-7")
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).
			Return(nil, errs.NewObjectNotFoundError("parcel", aggregate.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkReceivedCommandHandler(factory, new(MockDispatcher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestMarkReceivedCommandHandler_Handle_RetriesOnVersionConflict(t *testing.T) {
	ctx := context.Background()
	first := pendingParcel(t)
	cmd, err := commands.NewMarkReceivedCommand(first.ID(), "agent-7")
	require.NoError(t, err)

	// The second attempt must re-read fresh state, so Get returns a new
	// aggregate instance.
	second := pendingParcel(t)

	repo := new(MockParcelRepository)
	firstUoW := new(MockParcelUoW)
	secondUoW := new(MockParcelUoW)
	dispatcher := new(MockDispatcher)
	mock.InOrder(
		firstUoW.On("Begin", ctx).Return(nil).Once(),
		firstUoW.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, first.ID()).Return(first, nil).Once(),
		repo.On("Update", mock.Anything, first).
			Return(errs.NewConcurrencyConflictError("parcel", first.ID().String(), first.Version())).Once(),
		firstUoW.On("Rollback", ctx).Return(nil).Once(),
		secondUoW.On("Begin", ctx).Return(nil).Once(),
		secondUoW.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, first.ID()).Return(second, nil).Once(),
		repo.On("Update", mock.Anything, second).Return(nil).Once(),
		secondUoW.On("Commit", ctx).Return(nil).Once(),
		secondUoW.On("Rollback", ctx).Return(nil).Once(),
		dispatcher.On("Send", ctx, ports.NotificationParcelReceived, second).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(firstUoW).Once()
	factory.On("Create").Return(secondUoW).Once()

	h := commands.NewMarkReceivedCommandHandler(factory, dispatcher)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, parcel.StatusReceived, second.LogisticStatus())
	repo.AssertExpectations(t)
	firstUoW.AssertExpectations(t)
	secondUoW.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestMarkReceivedCommandHandler_Handle_NotificationFailureDoesNotFailScan(t *testing.T) {
	ctx := context.Background()
	aggregate := pendingParcel(t)
	cmd, err := commands.NewMarkReceivedCommand(aggregate.ID(), "agent-7")
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	dispatcher := new(MockDispatcher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		dispatcher.On("Send", ctx, ports.NotificationParcelReceived, aggregate).
			Return(assert.AnError).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkReceivedCommandHandler(factory, dispatcher)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	dispatcher.AssertExpectations(t)
}
