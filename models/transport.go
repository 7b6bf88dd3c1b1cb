package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TransportService là dịch vụ di chuyển merchant đăng trên sàn
type TransportService struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
	MerchantProfileID uint           `gorm:"index" json:"merchantProfileId"`
	Name              string         `json:"name"`
	VehicleType       string         `gorm:"type:varchar(32)" json:"vehicleType"`
	Description       string         `json:"description"`
	PricePerDay       float64        `json:"pricePerDay"`
	Capacity          int            `json:"capacity"`
	Images            pq.StringArray `gorm:"type:text[]" json:"images"`
	IsActive          bool           `gorm:"default:true" json:"isActive"`
	ApprovalInfo      `gorm:"embedded"`

	Merchant MerchantProfile `gorm:"foreignKey:MerchantProfileID" json:"merchant,omitempty"`
}
