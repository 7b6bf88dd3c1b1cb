package dto

import "time"

type CreateTransportInput struct {
	Name        string  `json:"name" binding:"required"`
	VehicleType string  `json:"vehicleType" binding:"required"`
	Description string  `json:"description"`
	PricePerDay float64 `json:"pricePerDay" binding:"required,gt=0"`
	Capacity    int     `json:"capacity" binding:"omitempty,min=1"`
}

type UpdateTransportInput struct {
	Name        *string  `json:"name"`
	VehicleType *string  `json:"vehicleType"`
	Description *string  `json:"description"`
	PricePerDay *float64 `json:"pricePerDay" binding:"omitempty,gt=0"`
	Capacity    *int     `json:"capacity" binding:"omitempty,min=1"`
	IsActive    *bool    `json:"isActive"`
}

type TransportResponse struct {
	ID              uint      `json:"id"`
	MerchantID      uint      `json:"merchantId"`
	Name            string    `json:"name"`
	VehicleType     string    `json:"vehicleType"`
	Description     string    `json:"description"`
	PricePerDay     float64   `json:"pricePerDay"`
	Capacity        int       `json:"capacity"`
	Images          []string  `json:"images"`
	IsActive        bool      `json:"isActive"`
	ApprovalStatus  string    `json:"approvalStatus"`
	RejectionReason *string   `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CreateArtistInput struct {
	Name          string  `json:"name" binding:"required"`
	Genre         string  `json:"genre" binding:"required"`
	Description   string  `json:"description"`
	PricePerEvent float64 `json:"pricePerEvent" binding:"required,gt=0"`
}

type UpdateArtistInput struct {
	Name          *string  `json:"name"`
	Genre         *string  `json:"genre"`
	Description   *string  `json:"description"`
	PricePerEvent *float64 `json:"pricePerEvent" binding:"omitempty,gt=0"`
	IsActive      *bool    `json:"isActive"`
}

type ArtistResponse struct {
	ID              uint      `json:"id"`
	MerchantID      uint      `json:"merchantId"`
	Name            string    `json:"name"`
	Genre           string    `json:"genre"`
	Description     string    `json:"description"`
	PricePerEvent   float64   `json:"pricePerEvent"`
	Images          []string  `json:"images"`
	IsActive        bool      `json:"isActive"`
	ApprovalStatus  string    `json:"approvalStatus"`
	RejectionReason *string   `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
