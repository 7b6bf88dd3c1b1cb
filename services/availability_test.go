package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vista/constants"
)

func day(d int) time.Time {
	return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
}

func TestRangesOverlap(t *testing.T) {
	cases := []struct {
		name                   string
		aIn, aOut, bIn, bOut   int
		want                   bool
	}{
		{"tách rời hoàn toàn", 1, 3, 5, 8, false},
		{"chồng một phần", 1, 5, 4, 8, true},
		{"bao trọn", 1, 10, 3, 5, true},
		// Biên bao gồm cả hai đầu: trả phòng ngày 5, nhận phòng ngày 5 vẫn trùng
		{"chạm biên checkout", 1, 5, 5, 8, true},
		{"chạm biên checkin", 5, 8, 1, 5, true},
		{"trùng hoàn toàn", 2, 4, 2, 4, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RangesOverlap(day(tc.aIn), day(tc.aOut), day(tc.bIn), day(tc.bOut))
			assert.Equal(t, tc.want, got)
			// Đối xứng theo hai khoảng
			assert.Equal(t, tc.want, RangesOverlap(day(tc.bIn), day(tc.bOut), day(tc.aIn), day(tc.aOut)))
		})
	}
}

func TestAvailabilityForBookingStatus(t *testing.T) {
	cases := []struct {
		bookingStatus string
		want          string
	}{
		{constants.BookingStatusPending, constants.AvailabilityUnavailable},
		{constants.BookingStatusConfirmed, constants.AvailabilityBooked},
		{constants.BookingStatusCompleted, constants.AvailabilityAvailable},
		{constants.BookingStatusCancelled, constants.AvailabilityAvailable},
		{constants.BookingStatusFailed, constants.AvailabilityAvailable},
	}

	for _, tc := range cases {
		t.Run(tc.bookingStatus, func(t *testing.T) {
			got, ok := AvailabilityForBookingStatus(tc.bookingStatus)
			assert.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	_, ok := AvailabilityForBookingStatus("mystery")
	assert.False(t, ok)
}

func TestExcludedBookingStatuses(t *testing.T) {
	// Booking cancelled/failed không giữ chỗ
	assert.Contains(t, constants.ExcludedBookingStatuses, constants.BookingStatusCancelled)
	assert.Contains(t, constants.ExcludedBookingStatuses, constants.BookingStatusFailed)
	assert.NotContains(t, constants.ExcludedBookingStatuses, constants.BookingStatusPending)
	assert.NotContains(t, constants.ExcludedBookingStatuses, constants.BookingStatusConfirmed)
	assert.NotContains(t, constants.ExcludedBookingStatuses, constants.BookingStatusCompleted)
}
