package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"vista/constants"
	"vista/dto"
	"vista/models"
	"vista/response"
	"vista/services"
	"vista/validator"
)

func toHomeStayResponse(homestay models.HomeStay) dto.HomeStayResponse {
	return dto.HomeStayResponse{
		ID:                 homestay.ID,
		PropertyID:         homestay.PropertyID,
		Name:               homestay.Name,
		Description:        homestay.Description,
		PricePerNight:      homestay.PricePerNight,
		MaxGuests:          homestay.MaxGuests,
		NumBed:             homestay.NumBed,
		NumToilet:          homestay.NumToilet,
		Avatar:             homestay.Avatar,
		Images:             homestay.Images,
		Amenities:          homestay.Amenities,
		AvailabilityStatus: homestay.AvailabilityStatus,
		IsActive:           homestay.IsActive,
		IsVerified:         homestay.IsVerified,
		ApprovalStatus:     homestay.ApprovalStatus,
		RejectionReason:    homestay.RejectionReason,
		ApprovedAt:         homestay.ApprovedAt,
		CreatedAt:          homestay.CreatedAt,
		UpdatedAt:          homestay.UpdatedAt,
	}
}

func loadHomeStay(c *gin.Context, checkOwner bool) (*models.HomeStay, bool) {
	homestayID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID homestay không hợp lệ")
		return nil, false
	}

	var homestay models.HomeStay
	if err := db.Preload("Property").First(&homestay, uint(homestayID)).Error; err != nil {
		response.NotFound(c)
		return nil, false
	}

	if checkOwner && !canManageProperty(c, &homestay.Property) {
		response.Forbidden(c)
		return nil, false
	}

	return &homestay, true
}

// GetHomeStays liệt kê homestay, lọc theo property nếu có
func GetHomeStays(c *gin.Context) {
	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tx := db.Model(&models.HomeStay{})
	if propertyIDStr := c.Query("propertyId"); propertyIDStr != "" {
		propertyID, err := strconv.ParseUint(propertyIDStr, 10, 32)
		if err != nil {
			response.BadRequest(c, "ID chỗ nghỉ không hợp lệ")
			return
		}
		tx = tx.Where("property_id = ?", uint(propertyID))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	var homestays []models.HomeStay
	if err := tx.
		Order("created_at DESC").
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&homestays).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	homestayResponses := make([]dto.HomeStayResponse, 0, len(homestays))
	for _, homestay := range homestays {
		homestayResponses = append(homestayResponses, toHomeStayResponse(homestay))
	}

	response.SuccessWithPagination(c, homestayResponses, query.Page, query.Limit, int(total))
}

// CreateHomeStay tạo homestay mới, kiểm tra quota merchant trước khi insert
func CreateHomeStay(c *gin.Context) {
	var input dto.CreateHomeStayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var property models.Property
	if err := db.Preload("Merchant").First(&property, input.PropertyID).Error; err != nil {
		response.BadRequest(c, "Không tìm thấy chỗ nghỉ")
		return
	}

	if !canManageProperty(c, &property) {
		response.Forbidden(c)
		return
	}

	if err := quotaGuard.AssertHomeStayQuota(&property.Merchant); err != nil {
		respondAppError(c, err)
		return
	}

	if err := validator.ValidatePrice(input.PricePerNight); err != nil {
		response.ValidationError(c, "Giá homestay không hợp lệ", err)
		return
	}

	homestay := models.HomeStay{
		PropertyID:         property.ID,
		Name:               input.Name,
		Description:        input.Description,
		PricePerNight:      input.PricePerNight,
		MaxGuests:          input.MaxGuests,
		NumBed:             input.NumBed,
		NumToilet:          input.NumToilet,
		Amenities:          pq.StringArray(input.Amenities),
		AvailabilityStatus: constants.AvailabilityAvailable,
		IsActive:           true,
	}
	if homestay.MaxGuests == 0 {
		homestay.MaxGuests = 4
	}

	if err := db.Create(&homestay).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Created(c, "Tạo homestay thành công", toHomeStayResponse(homestay))
}

// GetHomeStayDetail trả về chi tiết homestay
func GetHomeStayDetail(c *gin.Context) {
	homestay, ok := loadHomeStay(c, false)
	if !ok {
		return
	}

	response.Success(c, "Lấy chi tiết homestay thành công", toHomeStayResponse(*homestay))
}

// UpdateHomeStay cập nhật thông tin homestay
func UpdateHomeStay(c *gin.Context) {
	homestay, ok := loadHomeStay(c, true)
	if !ok {
		return
	}

	var input dto.UpdateHomeStayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Name != nil {
		homestay.Name = *input.Name
	}
	if input.Description != nil {
		homestay.Description = *input.Description
	}
	if input.PricePerNight != nil {
		homestay.PricePerNight = *input.PricePerNight
	}
	if input.MaxGuests != nil {
		homestay.MaxGuests = *input.MaxGuests
	}
	if input.NumBed != nil {
		homestay.NumBed = *input.NumBed
	}
	if input.NumToilet != nil {
		homestay.NumToilet = *input.NumToilet
	}
	if input.Amenities != nil {
		homestay.Amenities = pq.StringArray(*input.Amenities)
	}
	if input.IsActive != nil {
		homestay.IsActive = *input.IsActive
	}

	if c.GetString("accountType") == constants.AccountTypeMerchant &&
		(homestay.ApprovalStatus == constants.ApprovalRejected ||
			homestay.ApprovalStatus == constants.ApprovalChangesRequested) {
		if err := services.ApplyApprovalTransition(&homestay.ApprovalInfo, constants.ApprovalPending, "", time.Now()); err != nil {
			respondAppError(c, err)
			return
		}
	}

	if err := db.Save(homestay).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Cập nhật homestay thành công", toHomeStayResponse(*homestay))
}

// ChangeHomeStayAvailabilityStatus đổi trạng thái khả dụng thủ công
func ChangeHomeStayAvailabilityStatus(c *gin.Context) {
	homestay, ok := loadHomeStay(c, true)
	if !ok {
		return
	}

	var input dto.UpdateAvailabilityStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	homestay.AvailabilityStatus = input.AvailabilityStatus
	if err := homestay.ValidateAvailabilityStatus(); err != nil {
		response.BadRequest(c, "Trạng thái khả dụng không hợp lệ")
		return
	}

	if err := db.Model(homestay).Update("availability_status", homestay.AvailabilityStatus).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Cập nhật trạng thái homestay thành công", toHomeStayResponse(*homestay))
}

// ChangeHomeStayApprovalStatus cho admin duyệt/từ chối homestay.
// Khác với phòng, duyệt homestay không tự bật cờ xác minh.
func ChangeHomeStayApprovalStatus(c *gin.Context) {
	homestayID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID homestay không hợp lệ")
		return
	}

	var input dto.ChangeApprovalStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	homestay, err := approvalService.TransitionHomeStay(uint(homestayID), input.Status, input.Reason)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, "Cập nhật trạng thái kiểm duyệt thành công", toHomeStayResponse(*homestay))
}

// VerifyHomeStay cho admin bật/tắt cờ xác minh, tách biệt với kiểm duyệt
func VerifyHomeStay(c *gin.Context) {
	homestayID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID homestay không hợp lệ")
		return
	}

	var input dto.VerifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var homestay models.HomeStay
	if err := db.First(&homestay, uint(homestayID)).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := db.Model(&homestay).Update("is_verified", input.IsVerified).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	homestay.IsVerified = input.IsVerified

	response.Success(c, "Cập nhật xác minh thành công", toHomeStayResponse(homestay))
}

// DeleteHomeStay soft delete homestay
func DeleteHomeStay(c *gin.Context) {
	homestay, ok := loadHomeStay(c, true)
	if !ok {
		return
	}

	if err := db.Delete(homestay).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Xóa homestay thành công", nil)
}
