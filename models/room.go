package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"vista/constants"
)

// Room là phòng đặt theo ngày thuộc một Property
type Room struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
	PropertyID         uint           `gorm:"index" json:"propertyId"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	PricePerNight      float64        `json:"pricePerNight"`
	MaxGuests          int            `gorm:"default:2" json:"maxGuests"`
	NumBed             int            `json:"numBed"`
	NumToilet          int            `json:"numToilet"`
	Acreage            int            `json:"acreage"`
	Avatar             string         `json:"avatar"`
	Images             pq.StringArray `gorm:"type:text[]" json:"images"`
	Amenities          pq.StringArray `gorm:"type:text[]" json:"amenities"`
	AvailabilityStatus string         `gorm:"type:varchar(16);default:available" json:"availabilityStatus"`
	IsActive           bool           `gorm:"default:true" json:"isActive"`
	// VistaVerified được bật khi admin duyệt phòng, riêng cho Room
	VistaVerified bool `gorm:"default:false" json:"vistaVerified"`
	ApprovalInfo  `gorm:"embedded"`

	Property Property  `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Bookings []Booking `gorm:"many2many:booking_rooms;" json:"bookings,omitempty"`
}

// ValidateAvailabilityStatus kiểm tra trạng thái khả dụng hợp lệ
func (r *Room) ValidateAvailabilityStatus() error {
	switch r.AvailabilityStatus {
	case constants.AvailabilityAvailable, constants.AvailabilityUnavailable,
		constants.AvailabilityBooked, constants.AvailabilityMaintenance,
		constants.AvailabilityArchived:
		return nil
	}
	return fmt.Errorf("invalid availability status: %s", r.AvailabilityStatus)
}
