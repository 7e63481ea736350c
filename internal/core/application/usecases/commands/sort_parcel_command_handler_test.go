package commands_test

import (
	"context"
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSortParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	aggregate := weighedParcel(t)
	cmd, err := commands.NewSortParcelCommand(aggregate.ID(), "operator-3")
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSortParcelCommandHandler(factory)
	decision, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, parcel.ZoneA, decision.Zone)
	assert.Equal(t, parcel.StatusSorted, aggregate.LogisticStatus())
	assert.Equal(t, "operator-3", aggregate.SortedBy())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSortParcelCommandHandler_Handle_NotReady(t *testing.T) {
	ctx := context.Background()
	aggregate := receivedParcel(t)
	cmd, err := commands.NewSortParcelCommand(aggregate.ID(), "operator-3")
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSortParcelCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrNotReadyForSorting)
	assert.Equal(t, parcel.StatusReceived, aggregate.LogisticStatus())
	repo.AssertExpectations(t)
}

func TestSortParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	h := commands.NewSortParcelCommandHandler(new(MockParcelUoWFactory))
	_, err := h.Handle(ctx, commands.SortParcelCommand{})
	require.Error(t, err)
}
