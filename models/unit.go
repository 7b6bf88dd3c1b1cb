package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"vista/constants"
)

// Unit là đơn vị cho thuê dài hạn thuộc một Property,
// không đặt theo ngày nên không có trạng thái booked
type Unit struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
	PropertyID         uint           `gorm:"index" json:"propertyId"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	PricePerMonth      float64        `json:"pricePerMonth"`
	Acreage            int            `json:"acreage"`
	Images             pq.StringArray `gorm:"type:text[]" json:"images"`
	AvailabilityStatus string         `gorm:"type:varchar(16);default:available" json:"availabilityStatus"`
	IsActive           bool           `gorm:"default:true" json:"isActive"`
	ApprovalInfo       `gorm:"embedded"`

	Property Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}

// ValidateAvailabilityStatus kiểm tra trạng thái khả dụng hợp lệ (Unit không có booked)
func (u *Unit) ValidateAvailabilityStatus() error {
	switch u.AvailabilityStatus {
	case constants.AvailabilityAvailable, constants.AvailabilityUnavailable,
		constants.AvailabilityMaintenance, constants.AvailabilityArchived:
		return nil
	}
	return fmt.Errorf("invalid availability status: %s", u.AvailabilityStatus)
}
