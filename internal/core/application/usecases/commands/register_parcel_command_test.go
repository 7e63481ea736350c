package commands_test

import (
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterParcelCommand_Success(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewRegisterParcelCommand(id, "cg-2024-0158", "  Kinshasa ",
		"+243810000001", 10.5, parcel.SpecialCaseFragile, "admin")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.ParcelID().IsEqual(id))
	assert.Equal(t, "CG-2024-0158", cmd.TrackingCode().String())
	assert.Equal(t, "kinshasa", cmd.Destination().City())
	assert.Equal(t, parcel.SpecialCaseFragile, cmd.SpecialCase())
	assert.InDelta(t, 10.5, cmd.DeclaredWeight(), 0.001)
}

func TestNewRegisterParcelCommand_ValidationErrors(t *testing.T) {
	id := kernel.NewUUID()

	testCases := []struct {
		name         string
		trackingCode string
		city         string
		contact      string
		weight       float64
		createdBy    string
	}{
		{"empty_tracking_code", "", "kinshasa", "+243810000001", 10, "admin"},
		{"short_tracking_code", "CG-1", "kinshasa", "+243810000001", 10, "admin"},
		{"empty_destination", "CG-2024-0158", "", "+243810000001", 10, "admin"},
		{"empty_contact", "CG-2024-0158", "kinshasa", "", 10, "admin"},
		{"negative_weight", "CG-2024-0158", "kinshasa", "+243810000001", -1, "admin"},
		{"empty_created_by", "CG-2024-0158", "kinshasa", "+243810000001", 10, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewRegisterParcelCommand(id, tc.trackingCode, tc.city,
				tc.contact, tc.weight, parcel.SpecialCaseNone, tc.createdBy)
			require.Error(t, err)
		})
	}
}

func TestRegisterParcelCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.RegisterParcelCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterParcelCommandIsNotConstructed)
}

func TestNewMarkReceivedCommand_RequiresAgent(t *testing.T) {
	_, err := commands.NewMarkReceivedCommand(kernel.NewUUID(), "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
