package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"vista/dto"
	"vista/models"
	"vista/response"
	"vista/validator"
)

func toMerchantResponse(merchant models.MerchantProfile, propertyCount int64) dto.MerchantResponse {
	return dto.MerchantResponse{
		ID:                   merchant.ID,
		UserID:               merchant.UserID,
		BusinessName:         merchant.BusinessName,
		RegistrationNumber:   merchant.RegistrationNumber,
		Address:              merchant.Address,
		Status:               merchant.Status,
		MaxPropertiesAllowed: merchant.MaxPropertiesAllowed,
		PropertyCount:        propertyCount,
		CreatedAt:            merchant.CreatedAt,
		UpdatedAt:            merchant.UpdatedAt,
	}
}

func countMerchantProperties(merchantID uint) int64 {
	var count int64
	db.Model(&models.Property{}).Where("merchant_profile_id = ?", merchantID).Count(&count)
	return count
}

// CreateMerchantProfile tạo hồ sơ merchant cho user đang đăng nhập
func CreateMerchantProfile(c *gin.Context) {
	var input dto.CreateMerchantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := c.GetUint("userID")

	var existing models.MerchantProfile
	if err := db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		response.Conflict(c, "Tài khoản đã có hồ sơ merchant")
		return
	}

	merchant := models.MerchantProfile{
		UserID:             userID,
		BusinessName:       input.BusinessName,
		RegistrationNumber: input.RegistrationNumber,
		Address:            input.Address,
	}

	if err := validator.ValidateMerchant(&merchant); err != nil {
		response.ValidationError(c, "Hồ sơ merchant không hợp lệ", err)
		return
	}

	if err := db.Create(&merchant).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Created(c, "Tạo hồ sơ merchant thành công", toMerchantResponse(merchant, 0))
}

// GetMyMerchantProfile trả về hồ sơ merchant của user đang đăng nhập
func GetMyMerchantProfile(c *gin.Context) {
	merchant, ok := getMerchantForUser(c)
	if !ok {
		return
	}

	response.Success(c, "Lấy hồ sơ merchant thành công",
		toMerchantResponse(*merchant, countMerchantProperties(merchant.ID)))
}

// GetMerchants liệt kê hồ sơ merchant cho admin
func GetMerchants(c *gin.Context) {
	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tx := db.Model(&models.MerchantProfile{})
	if status := c.Query("status"); status != "" {
		tx = tx.Where("status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	var merchants []models.MerchantProfile
	if err := tx.
		Preload("User").
		Order("created_at DESC").
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&merchants).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	merchantResponses := make([]dto.MerchantResponse, 0, len(merchants))
	for _, merchant := range merchants {
		merchantResponses = append(merchantResponses,
			toMerchantResponse(merchant, countMerchantProperties(merchant.ID)))
	}

	response.SuccessWithPagination(c, merchantResponses, query.Page, query.Limit, int(total))
}

// GetMerchantDetail trả về chi tiết merchant cho admin
func GetMerchantDetail(c *gin.Context) {
	merchantID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID merchant không hợp lệ")
		return
	}

	var merchant models.MerchantProfile
	if err := db.Preload("User").Preload("Properties").First(&merchant, uint(merchantID)).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, "Lấy chi tiết merchant thành công", merchant)
}

// UpdateMerchantProfile cập nhật hồ sơ merchant của chính mình
func UpdateMerchantProfile(c *gin.Context) {
	merchant, ok := getMerchantForUser(c)
	if !ok {
		return
	}

	var input dto.UpdateMerchantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.BusinessName != nil {
		merchant.BusinessName = *input.BusinessName
	}
	if input.Address != nil {
		merchant.Address = *input.Address
	}

	if err := validator.ValidateMerchant(merchant); err != nil {
		response.ValidationError(c, "Hồ sơ merchant không hợp lệ", err)
		return
	}

	if err := db.Save(merchant).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Cập nhật hồ sơ merchant thành công",
		toMerchantResponse(*merchant, countMerchantProperties(merchant.ID)))
}

// ChangeMerchantStatus cho admin đổi trạng thái hoạt động của merchant
func ChangeMerchantStatus(c *gin.Context) {
	merchantID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID merchant không hợp lệ")
		return
	}

	var input dto.ChangeMerchantStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var merchant models.MerchantProfile
	if err := db.First(&merchant, uint(merchantID)).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := db.Model(&merchant).Update("status", input.Status).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	merchant.Status = input.Status

	response.Success(c, "Cập nhật trạng thái merchant thành công",
		toMerchantResponse(merchant, countMerchantProperties(merchant.ID)))
}

// UpdateMerchantQuota cho admin nâng/hạ hạn mức listing của merchant
func UpdateMerchantQuota(c *gin.Context) {
	merchantID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID merchant không hợp lệ")
		return
	}

	var input dto.UpdateQuotaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var merchant models.MerchantProfile
	if err := db.First(&merchant, uint(merchantID)).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := db.Model(&merchant).Update("max_properties_allowed", input.MaxPropertiesAllowed).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	merchant.MaxPropertiesAllowed = input.MaxPropertiesAllowed

	response.Success(c, "Cập nhật hạn mức thành công",
		toMerchantResponse(merchant, countMerchantProperties(merchant.ID)))
}
