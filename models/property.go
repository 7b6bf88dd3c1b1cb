package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Property là chỗ nghỉ của merchant, chứa các Room/HomeStay/Unit
type Property struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
	MerchantProfileID uint           `gorm:"index" json:"merchantProfileId"`
	Name              string         `json:"name"`
	Slug              string         `gorm:"unique" json:"slug"`
	ShortDescription  string         `json:"shortDescription"`
	Description       string         `json:"description"`
	Address           string         `json:"address"`
	Province          string         `json:"province"`
	District          string         `json:"district"`
	Ward              string         `json:"ward"`
	Longitude         float64        `json:"longitude"`
	Latitude          float64        `json:"latitude"`
	Avatar            string         `json:"avatar"`
	StarRating        int            `gorm:"default:0" json:"starRating"`
	Images            pq.StringArray `gorm:"type:text[]" json:"images"`
	Amenities         pq.StringArray `gorm:"type:text[]" json:"amenities"`
	IsActive          bool           `gorm:"default:true" json:"isActive"`
	IsVerified        bool           `gorm:"default:false" json:"isVerified"`
	ApprovalInfo      `gorm:"embedded"`

	Merchant  MerchantProfile `gorm:"foreignKey:MerchantProfileID" json:"merchant,omitempty"`
	Rooms     []Room          `gorm:"foreignKey:PropertyID" json:"rooms,omitempty"`
	HomeStays []HomeStay      `gorm:"foreignKey:PropertyID" json:"homestays,omitempty"`
	Units     []Unit          `gorm:"foreignKey:PropertyID" json:"units,omitempty"`
}
