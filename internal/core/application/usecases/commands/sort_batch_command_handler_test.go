package commands_test

import (
	"context"
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/services"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Each parcel sorts in its own transaction, so the mocks hand out one uow per
// batch entry.
func batchUoW(repo *MockParcelRepository, ctx context.Context, commit bool) *MockParcelUoW {
	uow := new(MockParcelUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	if commit {
		uow.On("Commit", ctx).Return(nil).Once()
	}
	uow.On("Rollback", ctx).Return(nil).Once()
	return uow
}

func TestSortBatchCommandHandler_Handle_IndependentOutcomes(t *testing.T) {
	ctx := context.Background()
	sortable := weighedParcel(t)
	notReady := receivedParcel(t)
	missingID := kernel.NewUUID()

	cmd, err := commands.NewSortBatchCommand(
		[]kernel.UUID{sortable.ID(), notReady.ID(), missingID}, "operator-3")
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	repo.On("Get", mock.Anything, sortable.ID()).Return(sortable, nil).Once()
	repo.On("Update", mock.Anything, sortable).Return(nil).Once()
	repo.On("Get", mock.Anything, notReady.ID()).Return(notReady, nil).Once()
	repo.On("Get", mock.Anything, missingID).
		Return(nil, errs.NewObjectNotFoundError("parcel", missingID)).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(batchUoW(repo, ctx, true)).Once()
	factory.On("Create").Return(batchUoW(repo, ctx, false)).Once()
	factory.On("Create").Return(batchUoW(repo, ctx, false)).Once()

	h := commands.NewSortBatchCommandHandler(factory)
	outcomes, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.True(t, outcomes[0].ParcelID.IsEqual(sortable.ID()))
	require.NoError(t, outcomes[0].Err)
	assert.Equal(t, parcel.ZoneA, outcomes[0].Decision.Zone)
	assert.Equal(t, parcel.StatusSorted, sortable.LogisticStatus())

	require.ErrorIs(t, outcomes[1].Err, services.ErrNotReadyForSorting)
	assert.Equal(t, parcel.StatusReceived, notReady.LogisticStatus())

	require.ErrorIs(t, outcomes[2].Err, errs.ErrObjectNotFound)

	repo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSortBatchCommandHandler_Handle_AllFailuresStillReturnOutcomes(t *testing.T) {
	ctx := context.Background()
	first := receivedParcel(t)
	second := receivedParcel(t)

	cmd, err := commands.NewSortBatchCommand([]kernel.UUID{first.ID(), second.ID()}, "operator-3")
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	repo.On("Get", mock.Anything, first.ID()).Return(first, nil).Once()
	repo.On("Get", mock.Anything, second.ID()).Return(second, nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(batchUoW(repo, ctx, false)).Once()
	factory.On("Create").Return(batchUoW(repo, ctx, false)).Once()

	h := commands.NewSortBatchCommandHandler(factory)
	outcomes, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	require.ErrorIs(t, outcomes[0].Err, services.ErrNotReadyForSorting)
	require.ErrorIs(t, outcomes[1].Err, services.ErrNotReadyForSorting)
}

func TestSortBatchCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	h := commands.NewSortBatchCommandHandler(new(MockParcelUoWFactory))
	_, err := h.Handle(ctx, commands.SortBatchCommand{})
	require.Error(t, err)
}

func TestNewSortBatchCommand_RejectsEmptyBatch(t *testing.T) {
	_, err := commands.NewSortBatchCommand(nil, "operator-3")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
