package queries_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockTrackingRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockTrackingRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockTrackingRepository) GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*parcel.Parcel, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

type MockTrackingCache struct{ mock.Mock }

func (m *MockTrackingCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockTrackingCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, payload, ttl)
	return args.Error(0)
}

func trackedParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	code, err := kernel.NewTrackingCode("CG-2024-0158")
	require.NoError(t, err)
	destination, err := kernel.NewDestination("kinshasa")
	require.NoError(t, err)

	p, err := parcel.NewParcel(kernel.NewUUID(), code, destination,
		"+243810000001", 10, parcel.SpecialCaseNone, "admin", time.Now())
	require.NoError(t, err)
	require.NoError(t, p.MarkReceived("agent-7", time.Now()))
	return p
}

func TestTrackParcelQueryHandler_Handle_CacheMissReadsRepositoryAndCaches(t *testing.T) {
	ctx := context.Background()
	aggregate := trackedParcel(t)
	query, err := queries.NewTrackParcelQuery("CG-2024-0158")
	require.NoError(t, err)

	repo := new(MockTrackingRepository)
	cache := new(MockTrackingCache)
	cache.On("Get", ctx, "tracking:CG-2024-0158").Return(nil, ports.ErrCacheMiss).Once()
	repo.On("GetByTrackingCode", ctx, query.TrackingCode()).Return(aggregate, nil).Once()
	cache.On("Set", ctx, "tracking:CG-2024-0158", mock.Anything, mock.Anything).Return(nil).Once()

	h := queries.NewTrackParcelQueryHandler(repo, cache)
	response, err := h.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, "CG-2024-0158", response.TrackingCode)
	assert.Equal(t, "at_warehouse", response.MainStatus)
	assert.Equal(t, "kinshasa", response.DestinationCity)
	require.Len(t, response.Steps, 2)
	assert.Equal(t, "intake", response.Steps[0].Step)
	assert.Equal(t, "received", response.Steps[1].Step)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestTrackParcelQueryHandler_Handle_CacheHitSkipsRepository(t *testing.T) {
	ctx := context.Background()
	query, err := queries.NewTrackParcelQuery("CG-2024-0158")
	require.NoError(t, err)

	cached := queries.TrackParcelQueryResponse{
		TrackingCode: "CG-2024-0158",
		MainStatus:   "in_transit",
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	repo := new(MockTrackingRepository)
	cache := new(MockTrackingCache)
	cache.On("Get", ctx, "tracking:CG-2024-0158").Return(payload, nil).Once()

	h := queries.NewTrackParcelQueryHandler(repo, cache)
	response, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "in_transit", response.MainStatus)
	repo.AssertNotCalled(t, "GetByTrackingCode", mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestTrackParcelQueryHandler_Handle_UnknownCodeIsNotCached(t *testing.T) {
	ctx := context.Background()
	query, err := queries.NewTrackParcelQuery("CG-2024-9999")
	require.NoError(t, err)

	repo := new(MockTrackingRepository)
	cache := new(MockTrackingCache)
	cache.On("Get", ctx, "tracking:CG-2024-9999").Return(nil, ports.ErrCacheMiss).Once()
	repo.On("GetByTrackingCode", ctx, query.TrackingCode()).
		Return(nil, errs.NewObjectNotFoundError("tracking code", "CG-2024-9999")).Once()

	h := queries.NewTrackParcelQueryHandler(repo, cache)
	_, err = h.Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTrackParcelQueryHandler_Handle_CacheOutageFallsThrough(t *testing.T) {
	ctx := context.Background()
	aggregate := trackedParcel(t)
	query, err := queries.NewTrackParcelQuery("CG-2024-0158")
	require.NoError(t, err)

	repo := new(MockTrackingRepository)
	cache := new(MockTrackingCache)
	cache.On("Get", ctx, "tracking:CG-2024-0158").Return(nil, assert.AnError).Once()
	repo.On("GetByTrackingCode", ctx, query.TrackingCode()).Return(aggregate, nil).Once()
	cache.On("Set", ctx, "tracking:CG-2024-0158", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	h := queries.NewTrackParcelQueryHandler(repo, cache)
	response, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "CG-2024-0158", response.TrackingCode)
}
