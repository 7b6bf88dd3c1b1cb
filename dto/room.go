package dto

import "time"

type CreateRoomInput struct {
	PropertyID    uint     `json:"propertyId" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"pricePerNight" binding:"required,gt=0"`
	MaxGuests     int      `json:"maxGuests" binding:"omitempty,min=1"`
	NumBed        int      `json:"numBed"`
	NumToilet     int      `json:"numToilet"`
	Acreage       int      `json:"acreage"`
	Amenities     []string `json:"amenities"`
}

type UpdateRoomInput struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	PricePerNight *float64  `json:"pricePerNight" binding:"omitempty,gt=0"`
	MaxGuests     *int      `json:"maxGuests" binding:"omitempty,min=1"`
	NumBed        *int      `json:"numBed"`
	NumToilet     *int      `json:"numToilet"`
	Acreage       *int      `json:"acreage"`
	Amenities     *[]string `json:"amenities"`
	IsActive      *bool     `json:"isActive"`
}

type UpdateAvailabilityStatusInput struct {
	AvailabilityStatus string `json:"availabilityStatus" binding:"required"`
}

type RoomResponse struct {
	ID                 uint       `json:"id"`
	PropertyID         uint       `json:"propertyId"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	PricePerNight      float64    `json:"pricePerNight"`
	MaxGuests          int        `json:"maxGuests"`
	NumBed             int        `json:"numBed"`
	NumToilet          int        `json:"numToilet"`
	Acreage            int        `json:"acreage"`
	Avatar             string     `json:"avatar"`
	Images             []string   `json:"images"`
	Amenities          []string   `json:"amenities"`
	AvailabilityStatus string     `json:"availabilityStatus"`
	IsActive           bool       `json:"isActive"`
	VistaVerified      bool       `json:"vistaVerified"`
	ApprovalStatus     string     `json:"approvalStatus"`
	RejectionReason    *string    `json:"rejectionReason,omitempty"`
	ApprovedAt         *time.Time `json:"approvedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}
