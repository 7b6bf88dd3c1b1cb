package dto

import "time"

type CreateMerchantInput struct {
	BusinessName       string `json:"businessName" binding:"required"`
	RegistrationNumber string `json:"registrationNumber" binding:"required"`
	Address            string `json:"address"`
}

type UpdateMerchantInput struct {
	BusinessName *string `json:"businessName"`
	Address      *string `json:"address"`
}

type ChangeMerchantStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending active suspended"`
}

type UpdateQuotaInput struct {
	MaxPropertiesAllowed int `json:"maxPropertiesAllowed" binding:"required,min=1"`
}

type MerchantResponse struct {
	ID                   uint      `json:"id"`
	UserID               uint      `json:"userId"`
	BusinessName         string    `json:"businessName"`
	RegistrationNumber   string    `json:"registrationNumber"`
	Address              string    `json:"address"`
	Status               string    `json:"status"`
	MaxPropertiesAllowed int       `json:"maxPropertiesAllowed"`
	PropertyCount        int64     `json:"propertyCount"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
