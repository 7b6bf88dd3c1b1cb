package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vista/models"
)

func TestBookingOnProperties(t *testing.T) {
	booking := &models.Booking{
		Rooms: []models.Room{
			{ID: 1, PropertyID: 10},
			{ID: 2, PropertyID: 10},
		},
		HomeStays: []models.HomeStay{
			{ID: 3, PropertyID: 20},
		},
	}

	tests := []struct {
		name        string
		propertyIDs []uint
		want        bool
	}{
		{"phòng thuộc merchant", []uint{10}, true},
		{"homestay thuộc merchant", []uint{20}, true},
		{"chỗ nghỉ của merchant khác", []uint{30, 40}, false},
		{"merchant chưa có chỗ nghỉ", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owned := make(map[uint]struct{}, len(tt.propertyIDs))
			for _, id := range tt.propertyIDs {
				owned[id] = struct{}{}
			}
			assert.Equal(t, tt.want, bookingOnProperties(booking, owned))
		})
	}
}

func TestBookingOnPropertiesEmptyBooking(t *testing.T) {
	booking := &models.Booking{}
	assert.False(t, bookingOnProperties(booking, map[uint]struct{}{10: {}}))
}
