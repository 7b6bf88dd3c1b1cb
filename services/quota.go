package services

import (
	"fmt"

	"gorm.io/gorm"

	"vista/errors"
	"vista/models"
)

// QuotaGuard chặn merchant tạo listing vượt quá MaxPropertiesAllowed.
// Guard chạy trước khi insert, không cần xóa bù.
type QuotaGuard struct {
	db *gorm.DB
}

func NewQuotaGuard(db *gorm.DB) *QuotaGuard {
	return &QuotaGuard{db: db}
}

// CheckQuota so sánh số listing hiện có với quota của merchant
func CheckQuota(count int64, quota int) error {
	if count >= int64(quota) {
		return errors.NewAppError(
			errors.ErrCodeQuotaExceeded,
			fmt.Sprintf("Đã đạt giới hạn %d chỗ nghỉ cho phép, liên hệ Vista để nâng hạn mức", quota),
			nil,
		)
	}
	return nil
}

// AssertPropertyQuota kiểm tra quota trước khi tạo Property cho merchant.
// Với thao tác admin tạo hộ, quota vẫn tính theo merchant đích.
func (g *QuotaGuard) AssertPropertyQuota(merchant *models.MerchantProfile) error {
	var count int64
	if err := g.db.Model(&models.Property{}).
		Where("merchant_profile_id = ?", merchant.ID).
		Count(&count).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không đếm được số chỗ nghỉ của merchant", err)
	}
	return CheckQuota(count, merchant.MaxPropertiesAllowed)
}

// AssertHomeStayQuota kiểm tra quota trước khi tạo HomeStay
func (g *QuotaGuard) AssertHomeStayQuota(merchant *models.MerchantProfile) error {
	var count int64
	if err := g.db.Model(&models.HomeStay{}).
		Joins("JOIN properties ON properties.id = home_stays.property_id").
		Where("properties.merchant_profile_id = ?", merchant.ID).
		Where("properties.deleted_at IS NULL").
		Count(&count).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không đếm được số homestay của merchant", err)
	}
	return CheckQuota(count, merchant.MaxPropertiesAllowed)
}

// AssertUnitQuota kiểm tra quota trước khi tạo Unit
func (g *QuotaGuard) AssertUnitQuota(merchant *models.MerchantProfile) error {
	var count int64
	if err := g.db.Model(&models.Unit{}).
		Joins("JOIN properties ON properties.id = units.property_id").
		Where("properties.merchant_profile_id = ?", merchant.ID).
		Where("properties.deleted_at IS NULL").
		Count(&count).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không đếm được số unit của merchant", err)
	}
	return CheckQuota(count, merchant.MaxPropertiesAllowed)
}
