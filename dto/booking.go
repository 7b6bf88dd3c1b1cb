package dto

import "time"

type CreateBookingInput struct {
	RoomIDs         []uint `json:"roomIds"`
	HomeStayID      *uint  `json:"homestayId"`
	CheckInDate     string `json:"checkInDate" binding:"required"`
	CheckOutDate    string `json:"checkOutDate" binding:"required"`
	NumberOfGuests  int    `json:"numberOfGuests" binding:"omitempty,min=1"`
	SpecialRequests string `json:"specialRequests"`
}

type ChangeBookingStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed failed"`
}

type UpdatePaymentStatusInput struct {
	PaymentStatus string `json:"paymentStatus" binding:"required,oneof=pending paid partially_paid refunded failed"`
}

type BookingEntityResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	PricePerNight float64 `json:"pricePerNight"`
}

type BookingResponse struct {
	ID             uint                    `json:"id"`
	ReferenceCode  string                  `json:"referenceCode"`
	CustomerID     uint                    `json:"customerId"`
	CustomerName   string                  `json:"customerName,omitempty"`
	CheckInDate    time.Time               `json:"checkInDate"`
	CheckOutDate   time.Time               `json:"checkOutDate"`
	TotalAmount    float64                 `json:"totalAmount"`
	BookingStatus  string                  `json:"bookingStatus"`
	PaymentStatus  string                  `json:"paymentStatus"`
	NumberOfGuests int                     `json:"numberOfGuests"`
	Rooms          []BookingEntityResponse `json:"rooms,omitempty"`
	HomeStays      []BookingEntityResponse `json:"homestays,omitempty"`
	CreatedAt      time.Time               `json:"createdAt"`
}
