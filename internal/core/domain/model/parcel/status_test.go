package parcel_test

import (
	"testing"

	"parcels/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogisticStatus_CanTransition(t *testing.T) {
	testCases := []struct {
		name    string
		from    parcel.LogisticStatus
		to      parcel.LogisticStatus
		allowed bool
	}{
		{"pending_reception_to_received", parcel.StatusPendingReception, parcel.StatusReceived, true},
		{"received_to_weighed", parcel.StatusReceived, parcel.StatusWeighed, true},
		{"received_to_weight_issue", parcel.StatusReceived, parcel.StatusWeightIssue, true},
		{"weighed_to_sorted", parcel.StatusWeighed, parcel.StatusSorted, true},
		{"weighed_to_verified", parcel.StatusWeighed, parcel.StatusVerified, true},
		{"weight_issue_to_verified", parcel.StatusWeightIssue, parcel.StatusVerified, true},
		{"weight_issue_to_sorted", parcel.StatusWeightIssue, parcel.StatusSorted, true},
		{"verified_to_sorted", parcel.StatusVerified, parcel.StatusSorted, true},
		{"sorted_to_payment_pending", parcel.StatusSorted, parcel.StatusPaymentPending, true},
		{"sorted_to_ready_grouping", parcel.StatusSorted, parcel.StatusReadyGrouping, true},
		{"payment_pending_to_ready_grouping", parcel.StatusPaymentPending, parcel.StatusReadyGrouping, true},
		{"ready_grouping_to_grouped", parcel.StatusReadyGrouping, parcel.StatusGrouped, true},
		{"grouped_to_shipped_rdc", parcel.StatusGrouped, parcel.StatusShippedRDC, true},
		{"shipped_rdc_to_delivered_final", parcel.StatusShippedRDC, parcel.StatusDeliveredFinal, true},
		{"pending_reception_to_cancelled", parcel.StatusPendingReception, parcel.StatusCancelled, true},

		// no-ops are not edges
		{"received_noop", parcel.StatusReceived, parcel.StatusReceived, false},
		{"sorted_noop", parcel.StatusSorted, parcel.StatusSorted, false},

		// regressions are not edges
		{"weighed_back_to_received", parcel.StatusWeighed, parcel.StatusReceived, false},
		{"sorted_back_to_weighed", parcel.StatusSorted, parcel.StatusWeighed, false},
		{"delivered_back_to_shipped", parcel.StatusDeliveredFinal, parcel.StatusShippedRDC, false},

		// skipping stages is not allowed
		{"pending_reception_to_weighed", parcel.StatusPendingReception, parcel.StatusWeighed, false},
		{"received_to_sorted", parcel.StatusReceived, parcel.StatusSorted, false},
		{"received_to_delivered", parcel.StatusReceived, parcel.StatusDeliveredFinal, false},

		// terminal states have no successors
		{"delivered_to_cancelled", parcel.StatusDeliveredFinal, parcel.StatusCancelled, false},
		{"blocked_to_ready_grouping", parcel.StatusBlocked, parcel.StatusReadyGrouping, false},
		{"cancelled_to_received", parcel.StatusCancelled, parcel.StatusReceived, false},

		// unknown is never a valid endpoint
		{"unknown_to_received", parcel.StatusUnknown, parcel.StatusReceived, false},
		{"received_to_unknown", parcel.StatusReceived, parcel.StatusUnknown, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to))
		})
	}
}

func TestLogisticStatus_IsTerminal(t *testing.T) {
	assert.True(t, parcel.StatusDeliveredFinal.IsTerminal())
	assert.True(t, parcel.StatusBlocked.IsTerminal())
	assert.True(t, parcel.StatusCancelled.IsTerminal())

	assert.False(t, parcel.StatusPendingReception.IsTerminal())
	assert.False(t, parcel.StatusSorted.IsTerminal())
	assert.False(t, parcel.StatusUnknown.IsTerminal())
}

func TestLogisticStatus_IsSortable(t *testing.T) {
	assert.True(t, parcel.StatusWeighed.IsSortable())
	assert.True(t, parcel.StatusVerified.IsSortable())
	assert.True(t, parcel.StatusWeightIssue.IsSortable())

	assert.False(t, parcel.StatusPendingReception.IsSortable())
	assert.False(t, parcel.StatusReceived.IsSortable())
	assert.False(t, parcel.StatusSorted.IsSortable())
	assert.False(t, parcel.StatusDeliveredFinal.IsSortable())
}

func TestLogisticStatus_Validate(t *testing.T) {
	require.NoError(t, parcel.StatusPendingReception.Validate())
	require.NoError(t, parcel.StatusCancelled.Validate())

	require.Error(t, parcel.StatusUnknown.Validate())
	require.Error(t, parcel.LogisticStatus(99).Validate())
}

func TestLogisticStatus_String_Parse_RoundTrip(t *testing.T) {
	statuses := []parcel.LogisticStatus{
		parcel.StatusPendingReception,
		parcel.StatusReceived,
		parcel.StatusWeighed,
		parcel.StatusWeightIssue,
		parcel.StatusVerified,
		parcel.StatusSorted,
		parcel.StatusPaymentPending,
		parcel.StatusReadyGrouping,
		parcel.StatusGrouped,
		parcel.StatusShippedRDC,
		parcel.StatusDeliveredFinal,
		parcel.StatusBlocked,
		parcel.StatusCancelled,
	}

	for _, status := range statuses {
		parsed, err := parcel.ParseLogisticStatus(status.String())
		require.NoError(t, err, status.String())
		assert.Equal(t, status, parsed)
	}

	_, err := parcel.ParseLogisticStatus("unknown")
	require.Error(t, err)
	_, err = parcel.ParseLogisticStatus("teleported")
	require.Error(t, err)
}

func TestMainStatusFor_IsTotalOverValidStatuses(t *testing.T) {
	testCases := []struct {
		status   parcel.LogisticStatus
		expected parcel.MainStatus
	}{
		{parcel.StatusPendingReception, parcel.MainAwaitingReception},
		{parcel.StatusReceived, parcel.MainAtWarehouse},
		{parcel.StatusWeighed, parcel.MainAtWarehouse},
		{parcel.StatusWeightIssue, parcel.MainAtWarehouse},
		{parcel.StatusVerified, parcel.MainAtWarehouse},
		{parcel.StatusSorted, parcel.MainAtWarehouse},
		{parcel.StatusPaymentPending, parcel.MainActionRequired},
		{parcel.StatusBlocked, parcel.MainActionRequired},
		{parcel.StatusReadyGrouping, parcel.MainInTransit},
		{parcel.StatusGrouped, parcel.MainInTransit},
		{parcel.StatusShippedRDC, parcel.MainInTransit},
		{parcel.StatusDeliveredFinal, parcel.MainDelivered},
		{parcel.StatusCancelled, parcel.MainCancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			derived := parcel.MainStatusFor(tc.status)
			assert.Equal(t, tc.expected, derived)
			assert.NotEqual(t, parcel.MainUnknown, derived)
		})
	}

	assert.Equal(t, parcel.MainUnknown, parcel.MainStatusFor(parcel.StatusUnknown))
}
