package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking là đơn đặt chỗ của khách, có thể gồm nhiều phòng và homestay
type Booking struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	ReferenceCode  string         `gorm:"type:varchar(36);uniqueIndex" json:"referenceCode"`
	CustomerID     uint           `gorm:"index" json:"customerId"`
	CheckInDate    time.Time      `gorm:"index" json:"checkInDate"`
	CheckOutDate   time.Time      `gorm:"index" json:"checkOutDate"`
	TotalAmount    float64        `json:"totalAmount"`
	BookingStatus  string         `gorm:"type:varchar(16);default:pending;index" json:"bookingStatus"`
	PaymentStatus  string         `gorm:"type:varchar(16);default:pending" json:"paymentStatus"`
	NumberOfGuests int            `gorm:"default:1" json:"numberOfGuests"`

	Customer  User       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Rooms     []Room     `gorm:"many2many:booking_rooms;" json:"rooms,omitempty"`
	HomeStays []HomeStay `gorm:"many2many:booking_home_stays;" json:"homestays,omitempty"`
}

// BookingRoom là bảng nối booking - room, kèm yêu cầu riêng cho từng phòng
type BookingRoom struct {
	BookingID       uint      `gorm:"primaryKey" json:"bookingId"`
	RoomID          uint      `gorm:"primaryKey" json:"roomId"`
	SpecialRequests string    `json:"specialRequests"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// BookingHomeStay là bảng nối booking - homestay
type BookingHomeStay struct {
	BookingID       uint      `gorm:"primaryKey" json:"bookingId"`
	HomeStayID      uint      `gorm:"primaryKey" json:"homestayId"`
	SpecialRequests string    `json:"specialRequests"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Nights số đêm của booking
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}
