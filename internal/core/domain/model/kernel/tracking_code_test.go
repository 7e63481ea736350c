package kernel_test

import (
	"testing"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingCode(t *testing.T) {
	t.Run("normalizes_to_uppercase", func(t *testing.T) {
		code, err := kernel.NewTrackingCode("cg-2024-0158")

		require.NoError(t, err)
		assert.Equal(t, "CG-2024-0158", code.String())
		require.NoError(t, code.Validate())
	})

	t.Run("trims_surrounding_whitespace", func(t *testing.T) {
		code, err := kernel.NewTrackingCode("  CG-2024-0158 ")

		require.NoError(t, err)
		assert.Equal(t, "CG-2024-0158", code.String())
	})

	t.Run("rejects_empty_input", func(t *testing.T) {
		_, err := kernel.NewTrackingCode("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_short_codes", func(t *testing.T) {
		_, err := kernel.NewTrackingCode("CG-1")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_invalid_characters", func(t *testing.T) {
		_, err := kernel.NewTrackingCode("CG 2024/0158")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTrackingCode_IsEqual(t *testing.T) {
	a, err := kernel.NewTrackingCode("cg-2024-0158")
	require.NoError(t, err)
	b, err := kernel.NewTrackingCode("CG-2024-0158")
	require.NoError(t, err)
	c, err := kernel.NewTrackingCode("CG-2024-0159")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestTrackingCode_Validate_ZeroValue(t *testing.T) {
	var code kernel.TrackingCode

	require.Error(t, code.Validate())
	assert.Equal(t, kernel.ErrTrackingCodeIsNotConstructed, code.Validate())
}

func TestNewDestination(t *testing.T) {
	t.Run("normalizes_to_lowercase", func(t *testing.T) {
		dest, err := kernel.NewDestination(" Kinshasa ")

		require.NoError(t, err)
		assert.Equal(t, "kinshasa", dest.City())
		require.NoError(t, dest.Validate())
	})

	t.Run("accepts_unmapped_cities", func(t *testing.T) {
		dest, err := kernel.NewDestination("Goma")

		require.NoError(t, err)
		assert.Equal(t, "goma", dest.City())
	})

	t.Run("rejects_empty_input", func(t *testing.T) {
		_, err := kernel.NewDestination("  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDestination_Validate_ZeroValue(t *testing.T) {
	var dest kernel.Destination

	require.Error(t, dest.Validate())
}
