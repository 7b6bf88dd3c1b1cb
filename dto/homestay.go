package dto

import "time"

type CreateHomeStayInput struct {
	PropertyID    uint     `json:"propertyId" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"pricePerNight" binding:"required,gt=0"`
	MaxGuests     int      `json:"maxGuests" binding:"omitempty,min=1"`
	NumBed        int      `json:"numBed"`
	NumToilet     int      `json:"numToilet"`
	Amenities     []string `json:"amenities"`
}

type UpdateHomeStayInput struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	PricePerNight *float64  `json:"pricePerNight" binding:"omitempty,gt=0"`
	MaxGuests     *int      `json:"maxGuests" binding:"omitempty,min=1"`
	NumBed        *int      `json:"numBed"`
	NumToilet     *int      `json:"numToilet"`
	Amenities     *[]string `json:"amenities"`
	IsActive      *bool     `json:"isActive"`
}

type VerifyInput struct {
	IsVerified bool `json:"isVerified"`
}

type HomeStayResponse struct {
	ID                 uint       `json:"id"`
	PropertyID         uint       `json:"propertyId"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	PricePerNight      float64    `json:"pricePerNight"`
	MaxGuests          int        `json:"maxGuests"`
	NumBed             int        `json:"numBed"`
	NumToilet          int        `json:"numToilet"`
	Avatar             string     `json:"avatar"`
	Images             []string   `json:"images"`
	Amenities          []string   `json:"amenities"`
	AvailabilityStatus string     `json:"availabilityStatus"`
	IsActive           bool       `json:"isActive"`
	IsVerified         bool       `json:"isVerified"`
	ApprovalStatus     string     `json:"approvalStatus"`
	RejectionReason    *string    `json:"rejectionReason,omitempty"`
	ApprovedAt         *time.Time `json:"approvedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}
