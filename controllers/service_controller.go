package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"vista/constants"
	"vista/dto"
	"vista/models"
	"vista/response"
)

func toTransportResponse(transport models.TransportService) dto.TransportResponse {
	return dto.TransportResponse{
		ID:              transport.ID,
		MerchantID:      transport.MerchantProfileID,
		Name:            transport.Name,
		VehicleType:     transport.VehicleType,
		Description:     transport.Description,
		PricePerDay:     transport.PricePerDay,
		Capacity:        transport.Capacity,
		Images:          transport.Images,
		IsActive:        transport.IsActive,
		ApprovalStatus:  transport.ApprovalStatus,
		RejectionReason: transport.RejectionReason,
		CreatedAt:       transport.CreatedAt,
	}
}

func toArtistResponse(artist models.ArtistService) dto.ArtistResponse {
	return dto.ArtistResponse{
		ID:              artist.ID,
		MerchantID:      artist.MerchantProfileID,
		Name:            artist.Name,
		Genre:           artist.Genre,
		Description:     artist.Description,
		PricePerEvent:   artist.PricePerEvent,
		Images:          artist.Images,
		IsActive:        artist.IsActive,
		ApprovalStatus:  artist.ApprovalStatus,
		RejectionReason: artist.RejectionReason,
		CreatedAt:       artist.CreatedAt,
	}
}

// canManageMerchantService kiểm tra quyền trên dịch vụ thuộc merchant
func canManageMerchantService(c *gin.Context, merchantProfileID uint) bool {
	if c.GetString("accountType") == constants.AccountTypeAdmin {
		return true
	}

	var merchant models.MerchantProfile
	if err := db.Where("user_id = ?", c.GetUint("userID")).First(&merchant).Error; err != nil {
		return false
	}
	return merchant.ID == merchantProfileID
}

// GetTransports liệt kê dịch vụ di chuyển đã duyệt
func GetTransports(c *gin.Context) {
	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tx := db.Model(&models.TransportService{})
	if c.GetString("accountType") == "" || c.GetString("accountType") == constants.AccountTypeCustomer {
		tx = tx.Where("approval_status = ?", constants.ApprovalApproved).Where("is_active = ?", true)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	var transports []models.TransportService
	if err := tx.
		Order("created_at DESC").
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&transports).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	transportResponses := make([]dto.TransportResponse, 0, len(transports))
	for _, transport := range transports {
		transportResponses = append(transportResponses, toTransportResponse(transport))
	}

	response.SuccessWithPagination(c, transportResponses, query.Page, query.Limit, int(total))
}

// CreateTransport tạo dịch vụ di chuyển cho merchant
func CreateTransport(c *gin.Context) {
	var input dto.CreateTransportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	merchant, ok := getMerchantForUser(c)
	if !ok {
		return
	}

	transport := models.TransportService{
		MerchantProfileID: merchant.ID,
		Name:              input.Name,
		VehicleType:       input.VehicleType,
		Description:       input.Description,
		PricePerDay:       input.PricePerDay,
		Capacity:          input.Capacity,
		IsActive:          true,
	}

	if err := db.Create(&transport).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Created(c, "Tạo dịch vụ di chuyển thành công", toTransportResponse(transport))
}

// UpdateTransport cập nhật dịch vụ di chuyển
func UpdateTransport(c *gin.Context) {
	transportID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID dịch vụ không hợp lệ")
		return
	}

	var transport models.TransportService
	if err := db.First(&transport, uint(transportID)).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !canManageMerchantService(c, transport.MerchantProfileID) {
		response.Forbidden(c)
		return
	}

	var input dto.UpdateTransportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Name != nil {
		transport.Name = *input.Name
	}
	if input.VehicleType != nil {
		transport.VehicleType = *input.VehicleType
	}
	if input.Description != nil {
		transport.Description = *input.Description
	}
	if input.PricePerDay != nil {
		transport.PricePerDay = *input.PricePerDay
	}
	if input.Capacity != nil {
		transport.Capacity = *input.Capacity
	}
	if input.IsActive != nil {
		transport.IsActive = *input.IsActive
	}

	if err := db.Save(&transport).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Cập nhật dịch vụ di chuyển thành công", toTransportResponse(transport))
}

// ChangeTransportApprovalStatus cho admin duyệt/từ chối dịch vụ di chuyển
func ChangeTransportApprovalStatus(c *gin.Context) {
	transportID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID dịch vụ không hợp lệ")
		return
	}

	var input dto.ChangeApprovalStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	transport, err := approvalService.TransitionTransport(uint(transportID), input.Status, input.Reason)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, "Cập nhật trạng thái kiểm duyệt thành công", toTransportResponse(*transport))
}

// DeleteTransport soft delete dịch vụ di chuyển
func DeleteTransport(c *gin.Context) {
	transportID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID dịch vụ không hợp lệ")
		return
	}

	var transport models.TransportService
	if err := db.First(&transport, uint(transportID)).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !canManageMerchantService(c, transport.MerchantProfileID) {
		response.Forbidden(c)
		return
	}

	if err := db.Delete(&transport).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Xóa dịch vụ di chuyển thành công", nil)
}

// GetArtists liệt kê dịch vụ nghệ sĩ đã duyệt
func GetArtists(c *gin.Context) {
	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tx := db.Model(&models.ArtistService{})
	if c.GetString("accountType") == "" || c.GetString("accountType") == constants.AccountTypeCustomer {
		tx = tx.Where("approval_status = ?", constants.ApprovalApproved).Where("is_active = ?", true)
	}
	if genre := c.Query("genre"); genre != "" {
		tx = tx.Where("genre = ?", genre)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	var artists []models.ArtistService
	if err := tx.
		Order("created_at DESC").
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&artists).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	artistResponses := make([]dto.ArtistResponse, 0, len(artists))
	for _, artist := range artists {
		artistResponses = append(artistResponses, toArtistResponse(artist))
	}

	response.SuccessWithPagination(c, artistResponses, query.Page, query.Limit, int(total))
}

// CreateArtist tạo dịch vụ nghệ sĩ cho merchant
func CreateArtist(c *gin.Context) {
	var input dto.CreateArtistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	merchant, ok := getMerchantForUser(c)
	if !ok {
		return
	}

	artist := models.ArtistService{
		MerchantProfileID: merchant.ID,
		Name:              input.Name,
		Genre:             input.Genre,
		Description:       input.Description,
		PricePerEvent:     input.PricePerEvent,
		IsActive:          true,
	}

	if err := db.Create(&artist).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Created(c, "Tạo dịch vụ nghệ sĩ thành công", toArtistResponse(artist))
}

// UpdateArtist cập nhật dịch vụ nghệ sĩ
func UpdateArtist(c *gin.Context) {
	artistID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID dịch vụ không hợp lệ")
		return
	}

	var artist models.ArtistService
	if err := db.First(&artist, uint(artistID)).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !canManageMerchantService(c, artist.MerchantProfileID) {
		response.Forbidden(c)
		return
	}

	var input dto.UpdateArtistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Name != nil {
		artist.Name = *input.Name
	}
	if input.Genre != nil {
		artist.Genre = *input.Genre
	}
	if input.Description != nil {
		artist.Description = *input.Description
	}
	if input.PricePerEvent != nil {
		artist.PricePerEvent = *input.PricePerEvent
	}
	if input.IsActive != nil {
		artist.IsActive = *input.IsActive
	}

	if err := db.Save(&artist).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Cập nhật dịch vụ nghệ sĩ thành công", toArtistResponse(artist))
}

// ChangeArtistApprovalStatus cho admin duyệt/từ chối dịch vụ nghệ sĩ
func ChangeArtistApprovalStatus(c *gin.Context) {
	artistID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID dịch vụ không hợp lệ")
		return
	}

	var input dto.ChangeApprovalStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	artist, err := approvalService.TransitionArtist(uint(artistID), input.Status, input.Reason)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, "Cập nhật trạng thái kiểm duyệt thành công", toArtistResponse(*artist))
}

// DeleteArtist soft delete dịch vụ nghệ sĩ
func DeleteArtist(c *gin.Context) {
	artistID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID dịch vụ không hợp lệ")
		return
	}

	var artist models.ArtistService
	if err := db.First(&artist, uint(artistID)).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !canManageMerchantService(c, artist.MerchantProfileID) {
		response.Forbidden(c)
		return
	}

	if err := db.Delete(&artist).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Xóa dịch vụ nghệ sĩ thành công", nil)
}
