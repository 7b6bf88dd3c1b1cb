package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ArtistService là dịch vụ nghệ sĩ địa phương merchant đăng trên sàn
type ArtistService struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
	MerchantProfileID uint           `gorm:"index" json:"merchantProfileId"`
	Name              string         `json:"name"`
	Genre             string         `gorm:"type:varchar(32)" json:"genre"`
	Description       string         `json:"description"`
	PricePerEvent     float64        `json:"pricePerEvent"`
	Images            pq.StringArray `gorm:"type:text[]" json:"images"`
	IsActive          bool           `gorm:"default:true" json:"isActive"`
	ApprovalInfo      `gorm:"embedded"`

	Merchant MerchantProfile `gorm:"foreignKey:MerchantProfileID" json:"merchant,omitempty"`
}
