package commands_test

import (
	"context"
	"testing"
	"time"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*parcel.Parcel, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

type MockParcelUoW struct{ mock.Mock }

func (m *MockParcelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) Send(ctx context.Context, event ports.NotificationEvent, p *parcel.Parcel) error {
	args := m.Called(ctx, event, p)
	return args.Error(0)
}

// Aggregate builders shared by the handler tests. Each returns a parcel
// parked at the named lifecycle stage.

func pendingParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	code, err := kernel.NewTrackingCode("CG-2024-0158")
	require.NoError(t, err)
	destination, err := kernel.NewDestination("kinshasa")
	require.NoError(t, err)

	p, err := parcel.NewParcel(kernel.NewUUID(), code, destination,
		"+243810000001", 10, parcel.SpecialCaseNone, "admin", time.Now())
	require.NoError(t, err)
	return p
}

func receivedParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	p := pendingParcel(t)
	require.NoError(t, p.MarkReceived("agent-7", time.Now()))
	return p
}

func weightIssueParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	p := receivedParcel(t)
	verification := services.NewWeightVerifier().Verify(p.WeightDeclared(), p.WeightDeclared()*1.2)
	require.NoError(t, p.RecordWeighing(verification, nil, "agent-7", time.Now()))
	return p
}

func weighedParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	p := receivedParcel(t)
	verification := services.NewWeightVerifier().Verify(p.WeightDeclared(), p.WeightDeclared())
	require.NoError(t, p.RecordWeighing(verification, nil, "agent-7", time.Now()))
	return p
}
