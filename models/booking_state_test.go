package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vista/constants"
)

func TestApplyStatusFromPending(t *testing.T) {
	cases := []struct {
		target  string
		wantErr bool
	}{
		{constants.BookingStatusConfirmed, false},
		{constants.BookingStatusCancelled, false},
		{constants.BookingStatusFailed, false},
		{constants.BookingStatusCompleted, true},
	}

	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			booking := &Booking{BookingStatus: constants.BookingStatusPending}
			err := ApplyStatus(booking, tc.target)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Equal(t, constants.BookingStatusPending, booking.BookingStatus)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.target, booking.BookingStatus)
			}
		})
	}
}

func TestApplyStatusFromConfirmed(t *testing.T) {
	cases := []struct {
		target  string
		wantErr bool
	}{
		{constants.BookingStatusCompleted, false},
		{constants.BookingStatusCancelled, false},
		{constants.BookingStatusConfirmed, true},
		{constants.BookingStatusFailed, true},
	}

	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			booking := &Booking{BookingStatus: constants.BookingStatusConfirmed}
			err := ApplyStatus(booking, tc.target)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Equal(t, constants.BookingStatusConfirmed, booking.BookingStatus)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.target, booking.BookingStatus)
			}
		})
	}
}

func TestApplyStatusTerminalStates(t *testing.T) {
	terminal := []string{
		constants.BookingStatusCompleted,
		constants.BookingStatusCancelled,
		constants.BookingStatusFailed,
	}
	targets := []string{
		constants.BookingStatusConfirmed,
		constants.BookingStatusCancelled,
		constants.BookingStatusCompleted,
		constants.BookingStatusFailed,
	}

	for _, status := range terminal {
		for _, target := range targets {
			booking := &Booking{BookingStatus: status}
			err := ApplyStatus(booking, target)
			assert.Error(t, err, "từ %s sang %s phải bị chặn", status, target)
			assert.Equal(t, status, booking.BookingStatus)
		}
	}
}

func TestApplyStatusUnknownTarget(t *testing.T) {
	booking := &Booking{BookingStatus: constants.BookingStatusPending}
	err := ApplyStatus(booking, "teleported")
	assert.Error(t, err)
}
