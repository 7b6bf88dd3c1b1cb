package dto

import "time"

type CreatePropertyInput struct {
	Name             string   `json:"name" binding:"required"`
	ShortDescription string   `json:"shortDescription"`
	Description      string   `json:"description"`
	Address          string   `json:"address" binding:"required"`
	Province         string   `json:"province" binding:"required"`
	District         string   `json:"district"`
	Ward             string   `json:"ward"`
	Longitude        float64  `json:"longitude"`
	Latitude         float64  `json:"latitude"`
	StarRating       int      `json:"starRating" binding:"omitempty,min=0,max=5"`
	Amenities        []string `json:"amenities"`
	MerchantID       *uint    `json:"merchantId"`
}

type UpdatePropertyInput struct {
	Name             *string   `json:"name"`
	ShortDescription *string   `json:"shortDescription"`
	Description      *string   `json:"description"`
	Address          *string   `json:"address"`
	Province         *string   `json:"province"`
	District         *string   `json:"district"`
	Ward             *string   `json:"ward"`
	Longitude        *float64  `json:"longitude"`
	Latitude         *float64  `json:"latitude"`
	StarRating       *int      `json:"starRating" binding:"omitempty,min=0,max=5"`
	Amenities        *[]string `json:"amenities"`
	IsActive         *bool     `json:"isActive"`
}

type UpdateAmenitiesInput struct {
	Amenities []string `json:"amenities" binding:"required"`
}

type PropertyFilterQuery struct {
	PaginationQuery
	Search   string `form:"search"`
	Province string `form:"province"`
	IsActive *bool  `form:"isActive"`
	Status   string `form:"status" binding:"omitempty,oneof=pending approved rejected changes_requested"`
}

type PropertyResponse struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	Slug             string     `json:"slug"`
	ShortDescription string     `json:"shortDescription"`
	Address          string     `json:"address"`
	Province         string     `json:"province"`
	District         string     `json:"district"`
	Ward             string     `json:"ward"`
	Longitude        float64    `json:"longitude"`
	Latitude         float64    `json:"latitude"`
	Avatar           string     `json:"avatar"`
	StarRating       int        `json:"starRating"`
	Images           []string   `json:"images"`
	Amenities        []string   `json:"amenities"`
	IsActive         bool       `json:"isActive"`
	IsVerified       bool       `json:"isVerified"`
	ApprovalStatus   string     `json:"approvalStatus"`
	RejectionReason  *string    `json:"rejectionReason,omitempty"`
	ApprovedAt       *time.Time `json:"approvedAt,omitempty"`
	MerchantID       uint       `json:"merchantId"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
