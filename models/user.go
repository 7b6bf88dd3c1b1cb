package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"vista/constants"
)

type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	Name          string         `gorm:"default:New User" json:"name"`
	Email         string         `gorm:"unique" json:"email"`
	Password      string         `json:"-"`
	PhoneNumber   string         `gorm:"type:varchar(15)" json:"phoneNumber"`
	AccountType   string         `gorm:"type:varchar(16);default:customer" json:"accountType"`
	Avatar        string         `json:"avatar"`
	IsVerified    bool           `gorm:"default:false" json:"isVerified"`
	Code          string         `json:"-"`
	CodeCreatedAt time.Time      `gorm:"autoCreateTime" json:"-"`

	MerchantProfile *MerchantProfile `gorm:"foreignKey:UserID" json:"merchantProfile,omitempty"`
	Bookings        []Booking        `gorm:"foreignKey:CustomerID" json:"bookings,omitempty"`
}

// ValidateAccountType kiểm tra loại tài khoản hợp lệ
func (u *User) ValidateAccountType() error {
	switch u.AccountType {
	case constants.AccountTypeAdmin, constants.AccountTypeMerchant, constants.AccountTypeCustomer:
		return nil
	}
	return fmt.Errorf("invalid account type: %s", u.AccountType)
}

func (u *User) IsAdmin() bool {
	return u.AccountType == constants.AccountTypeAdmin
}

func (u *User) IsMerchant() bool {
	return u.AccountType == constants.AccountTypeMerchant
}
