package dto

import "time"

type CreateUnitInput struct {
	PropertyID    uint    `json:"propertyId" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	PricePerMonth float64 `json:"pricePerMonth" binding:"required,gt=0"`
	Acreage       int     `json:"acreage"`
}

type UpdateUnitInput struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	PricePerMonth *float64 `json:"pricePerMonth" binding:"omitempty,gt=0"`
	Acreage       *int     `json:"acreage"`
	IsActive      *bool    `json:"isActive"`
}

type UnitResponse struct {
	ID                 uint       `json:"id"`
	PropertyID         uint       `json:"propertyId"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	PricePerMonth      float64    `json:"pricePerMonth"`
	Acreage            int        `json:"acreage"`
	Images             []string   `json:"images"`
	AvailabilityStatus string     `json:"availabilityStatus"`
	IsActive           bool       `json:"isActive"`
	ApprovalStatus     string     `json:"approvalStatus"`
	RejectionReason    *string    `json:"rejectionReason,omitempty"`
	ApprovedAt         *time.Time `json:"approvedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}
