package models

import (
	"time"

	"gorm.io/gorm"
)

// MerchantProfile là hồ sơ merchant sở hữu các listing trên sàn
type MerchantProfile struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	CreatedAt            time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt            time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
	UserID               uint           `gorm:"uniqueIndex" json:"userId"`
	BusinessName         string         `json:"businessName"`
	RegistrationNumber   string         `gorm:"unique" json:"registrationNumber"`
	Address              string         `json:"address"`
	Status               string         `gorm:"type:varchar(16);default:pending" json:"status"`
	MaxPropertiesAllowed int            `gorm:"default:5" json:"maxPropertiesAllowed"`

	User       User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Properties []Property         `gorm:"foreignKey:MerchantProfileID" json:"properties,omitempty"`
	Transports []TransportService `gorm:"foreignKey:MerchantProfileID" json:"transports,omitempty"`
	Artists    []ArtistService    `gorm:"foreignKey:MerchantProfileID" json:"artists,omitempty"`
}
