package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"vista/constants"
	"vista/dto"
	"vista/models"
	"vista/response"
	"vista/services"
	"vista/validator"
)

func toUnitResponse(unit models.Unit) dto.UnitResponse {
	return dto.UnitResponse{
		ID:                 unit.ID,
		PropertyID:         unit.PropertyID,
		Name:               unit.Name,
		Description:        unit.Description,
		PricePerMonth:      unit.PricePerMonth,
		Acreage:            unit.Acreage,
		Images:             unit.Images,
		AvailabilityStatus: unit.AvailabilityStatus,
		IsActive:           unit.IsActive,
		ApprovalStatus:     unit.ApprovalStatus,
		RejectionReason:    unit.RejectionReason,
		ApprovedAt:         unit.ApprovedAt,
		CreatedAt:          unit.CreatedAt,
		UpdatedAt:          unit.UpdatedAt,
	}
}

func loadUnit(c *gin.Context, checkOwner bool) (*models.Unit, bool) {
	unitID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID unit không hợp lệ")
		return nil, false
	}

	var unit models.Unit
	if err := db.Preload("Property").First(&unit, uint(unitID)).Error; err != nil {
		response.NotFound(c)
		return nil, false
	}

	if checkOwner && !canManageProperty(c, &unit.Property) {
		response.Forbidden(c)
		return nil, false
	}

	return &unit, true
}

// GetUnits liệt kê unit, lọc theo property nếu có
func GetUnits(c *gin.Context) {
	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tx := db.Model(&models.Unit{})
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

	var units []models.Unit
	if err := tx.
		Order("created_at DESC").
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&units).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	unitResponses := make([]dto.UnitResponse, 0, len(units))
	for _, unit := range units {
		unitResponses = append(unitResponses, toUnitResponse(unit))
	}

	response.SuccessWithPagination(c, unitResponses, query.Page, query.Limit, int(total))
}

// CreateUnit tạo unit cho thuê dài hạn, kiểm tra quota merchant trước
func CreateUnit(c *gin.Context) {
	var input dto.CreateUnitInput
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

	if err := quotaGuard.AssertUnitQuota(&property.Merchant); err != nil {
		respondAppError(c, err)
		return
	}

	if err := validator.ValidatePrice(input.PricePerMonth); err != nil {
		response.ValidationError(c, "Giá thuê không hợp lệ", err)
		return
	}

	unit := models.Unit{
		PropertyID:         property.ID,
		Name:               input.Name,
		Description:        input.Description,
		PricePerMonth:      input.PricePerMonth,
		Acreage:            input.Acreage,
		AvailabilityStatus: constants.AvailabilityAvailable,
		IsActive:           true,
	}

	if err := db.Create(&unit).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Created(c, "Tạo unit thành công", toUnitResponse(unit))
}

// GetUnitDetail trả về chi tiết unit
func GetUnitDetail(c *gin.Context) {
	unit, ok := loadUnit(c, false)
	if !ok {
		return
	}

	response.Success(c, "Lấy chi tiết unit thành công", toUnitResponse(*unit))
}

// UpdateUnit cập nhật thông tin unit
func UpdateUnit(c *gin.Context) {
	unit, ok := loadUnit(c, true)
	if !ok {
		return
	}

	var input dto.UpdateUnitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Name != nil {
		unit.Name = *input.Name
	}
	if input.Description != nil {
		unit.Description = *input.Description
	}
	if input.PricePerMonth != nil {
		unit.PricePerMonth = *input.PricePerMonth
	}
	if input.Acreage != nil {
		unit.Acreage = *input.Acreage
	}
	if input.IsActive != nil {
		unit.IsActive = *input.IsActive
	}

	if c.GetString("accountType") == constants.AccountTypeMerchant &&
		(unit.ApprovalStatus == constants.ApprovalRejected ||
			unit.ApprovalStatus == constants.ApprovalChangesRequested) {
		if err := services.ApplyApprovalTransition(&unit.ApprovalInfo, constants.ApprovalPending, "", time.Now()); err != nil {
			respondAppError(c, err)
			return
		}
	}

	if err := db.Save(unit).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Cập nhật unit thành công", toUnitResponse(*unit))
}

// ChangeUnitAvailabilityStatus đổi trạng thái khả dụng thủ công (unit không có booked)
func ChangeUnitAvailabilityStatus(c *gin.Context) {
	unit, ok := loadUnit(c, true)
	if !ok {
		return
	}

	var input dto.UpdateAvailabilityStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	unit.AvailabilityStatus = input.AvailabilityStatus
	if err := unit.ValidateAvailabilityStatus(); err != nil {
		response.BadRequest(c, "Trạng thái khả dụng không hợp lệ")
		return
	}

	if err := db.Model(unit).Update("availability_status", unit.AvailabilityStatus).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Cập nhật trạng thái unit thành công", toUnitResponse(*unit))
}

// ChangeUnitApprovalStatus cho admin duyệt/từ chối unit
func ChangeUnitApprovalStatus(c *gin.Context) {
	unitID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID unit không hợp lệ")
		return
	}

	var input dto.ChangeApprovalStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	unit, err := approvalService.TransitionUnit(uint(unitID), input.Status, input.Reason)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, "Cập nhật trạng thái kiểm duyệt thành công", toUnitResponse(*unit))
}

// DeleteUnit soft delete unit
func DeleteUnit(c *gin.Context) {
	unit, ok := loadUnit(c, true)
	if !ok {
		return
	}

	if err := db.Delete(unit).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Xóa unit thành công", nil)
}
