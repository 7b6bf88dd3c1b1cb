package controllers

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"vista/config"
	"vista/constants"
	"vista/dto"
	"vista/models"
	"vista/response"
	"vista/services"
	"vista/utils"
	"vista/validator"
)

const propertyCacheKey = "properties:approved"

func toPropertyResponse(property models.Property) dto.PropertyResponse {
	return dto.PropertyResponse{
		ID:               property.ID,
		Name:             property.Name,
		Slug:             property.Slug,
		ShortDescription: property.ShortDescription,
		Address:          property.Address,
		Province:         property.Province,
		District:         property.District,
		Ward:             property.Ward,
		Longitude:        property.Longitude,
		Latitude:         property.Latitude,
		Avatar:           property.Avatar,
		StarRating:       property.StarRating,
		Images:           property.Images,
		Amenities:        property.Amenities,
		IsActive:         property.IsActive,
		IsVerified:       property.IsVerified,
		ApprovalStatus:   property.ApprovalStatus,
		RejectionReason:  property.RejectionReason,
		ApprovedAt:       property.ApprovedAt,
		MerchantID:       property.MerchantProfileID,
		CreatedAt:        property.CreatedAt,
		UpdatedAt:        property.UpdatedAt,
	}
}

// getMerchantForUser lấy hồ sơ merchant của user đang đăng nhập
func getMerchantForUser(c *gin.Context) (*models.MerchantProfile, bool) {
	var merchant models.MerchantProfile
	if err := db.Where("user_id = ?", c.GetUint("userID")).First(&merchant).Error; err != nil {
		response.BadRequest(c, "Tài khoản chưa có hồ sơ merchant")
		return nil, false
	}
	return &merchant, true
}

// canManageProperty kiểm tra quyền thao tác trên property:
// admin thao tác mọi listing, merchant chỉ listing của mình
func canManageProperty(c *gin.Context, property *models.Property) bool {
	if c.GetString("accountType") == constants.AccountTypeAdmin {
		return true
	}

	var merchant models.MerchantProfile
	if err := db.Where("user_id = ?", c.GetUint("userID")).First(&merchant).Error; err != nil {
		return false
	}
	return property.MerchantProfileID == merchant.ID
}

func invalidatePropertyCache() {
	if redisCli == nil {
		return
	}
	if err := services.DeleteKeysByPattern(config.Ctx, redisCli, "properties:*"); err != nil {
		log.Printf("Lỗi khi xóa cache properties: %v", err)
	}
}

// GetAllPropertiesForUser liệt kê chỗ nghỉ đã duyệt cho khách,
// hỗ trợ tìm kiếm gần đúng tiếng Việt và cache Redis.
func GetAllPropertiesForUser(c *gin.Context) {
	var query dto.PropertyFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var properties []models.Property

	// Thử lấy danh sách đã duyệt từ Redis trước
	cached := false
	if redisCli != nil {
		if err := services.GetFromRedis(config.Ctx, redisCli, propertyCacheKey, &properties); err == nil && len(properties) > 0 {
			cached = true
		}
	}

	if !cached {
		if err := db.
			Where("approval_status = ?", constants.ApprovalApproved).
			Where("is_active = ?", true).
			Find(&properties).Error; err != nil {
			response.ServerError(c, err)
			return
		}
		if redisCli != nil {
			if err := services.SetToRedis(config.Ctx, redisCli, propertyCacheKey, properties, 10*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu cache properties: %v", err)
			}
		}
	}

	if query.Province != "" {
		filtered := properties[:0]
		for _, property := range properties {
			if services.NormalizeInput(property.Province) == services.NormalizeInput(query.Province) {
				filtered = append(filtered, property)
			}
		}
		properties = filtered
	}

	if query.Search != "" {
		cmProvince := services.CreateMatcher(services.PrepareProvinceList(properties))
		scored := services.FilterAndScoreProperties(query.Search, properties, cmProvince)
		properties = make([]models.Property, 0, len(scored))
		for _, s := range scored {
			properties = append(properties, s.Property)
		}
	}

	total := len(properties)
	start := (query.Page - 1) * query.Limit
	end := start + query.Limit
	if start >= total {
		properties = []models.Property{}
	} else if end > total {
		properties = properties[start:]
	} else {
		properties = properties[start:end]
	}

	propertyResponses := make([]dto.PropertyResponse, 0, len(properties))
	for _, property := range properties {
		propertyResponses = append(propertyResponses, toPropertyResponse(property))
	}

	response.SuccessWithPagination(c, propertyResponses, query.Page, query.Limit, total)
}

// GetAllProperties liệt kê chỗ nghỉ cho admin/merchant, kèm lọc trạng thái duyệt
func GetAllProperties(c *gin.Context) {
	var query dto.PropertyFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tx := db.Model(&models.Property{})

	if c.GetString("accountType") == constants.AccountTypeMerchant {
		merchant, ok := getMerchantForUser(c)
		if !ok {
			return
		}
		tx = tx.Where("merchant_profile_id = ?", merchant.ID)
	}

	if query.Status != "" {
		tx = tx.Where("approval_status = ?", query.Status)
	}
	if query.IsActive != nil {
		tx = tx.Where("is_active = ?", *query.IsActive)
	}
	if query.Province != "" {
		tx = tx.Where("province = ?", query.Province)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	var properties []models.Property
	if err := tx.
		Order("created_at DESC").
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&properties).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	propertyResponses := make([]dto.PropertyResponse, 0, len(properties))
	for _, property := range properties {
		propertyResponses = append(propertyResponses, toPropertyResponse(property))
	}

	response.SuccessWithPagination(c, propertyResponses, query.Page, query.Limit, int(total))
}

// CreateProperty tạo chỗ nghỉ mới, kiểm tra quota merchant trước khi insert
func CreateProperty(c *gin.Context) {
	var input dto.CreatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var merchant models.MerchantProfile
	if c.GetString("accountType") == constants.AccountTypeAdmin && input.MerchantID != nil {
		// Admin tạo hộ: quota vẫn tính theo merchant đích
		if err := db.First(&merchant, *input.MerchantID).Error; err != nil {
			response.BadRequest(c, "Không tìm thấy merchant")
			return
		}
	} else {
		found, ok := getMerchantForUser(c)
		if !ok {
			return
		}
		merchant = *found
	}

	if err := quotaGuard.AssertPropertyQuota(&merchant); err != nil {
		respondAppError(c, err)
		return
	}

	property := models.Property{
		MerchantProfileID: merchant.ID,
		Name:              input.Name,
		ShortDescription:  input.ShortDescription,
		Description:       input.Description,
		Address:           input.Address,
		Province:          input.Province,
		District:          input.District,
		Ward:              input.Ward,
		Longitude:         input.Longitude,
		Latitude:          input.Latitude,
		StarRating:        input.StarRating,
		Amenities:         pq.StringArray(input.Amenities),
		IsActive:          true,
	}

	if err := validator.ValidateProperty(&property); err != nil {
		response.ValidationError(c, "Dữ liệu chỗ nghỉ không hợp lệ", err)
		return
	}

	slug, err := utils.UniqueSlug(property.Name, func(slug string) (bool, error) {
		var count int64
		if err := db.Model(&models.Property{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	})
	if err != nil {
		response.ServerError(c, err)
		return
	}
	property.Slug = slug

	if err := db.Create(&property).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	invalidatePropertyCache()
	response.Created(c, "Tạo chỗ nghỉ thành công", toPropertyResponse(property))
}

// GetPropertyDetail trả về chi tiết chỗ nghỉ theo id hoặc slug
func GetPropertyDetail(c *gin.Context) {
	idOrSlug := c.Param("id")

	var property models.Property
	tx := db.Preload("Rooms").Preload("HomeStays").Preload("Units")
	if propertyID, err := strconv.ParseUint(idOrSlug, 10, 32); err == nil {
		tx = tx.Where("id = ?", uint(propertyID))
	} else {
		tx = tx.Where("slug = ?", idOrSlug)
	}

	if err := tx.First(&property).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, "Lấy chi tiết chỗ nghỉ thành công", property)
}

func loadPropertyForUpdate(c *gin.Context) (*models.Property, bool) {
	propertyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID chỗ nghỉ không hợp lệ")
		return nil, false
	}

	var property models.Property
	if err := db.First(&property, uint(propertyID)).Error; err != nil {
		response.NotFound(c)
		return nil, false
	}

	if !canManageProperty(c, &property) {
		response.Forbidden(c)
		return nil, false
	}

	return &property, true
}

// UpdateProperty cập nhật thông tin chỗ nghỉ.
// Merchant sửa listing bị từ chối sẽ tự quay về pending chờ duyệt lại.
func UpdateProperty(c *gin.Context) {
	property, ok := loadPropertyForUpdate(c)
	if !ok {
		return
	}

	var input dto.UpdatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Name != nil {
		property.Name = *input.Name
	}
	if input.ShortDescription != nil {
		property.ShortDescription = *input.ShortDescription
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.Address != nil {
		property.Address = *input.Address
	}
	if input.Province != nil {
		property.Province = *input.Province
	}
	if input.District != nil {
		property.District = *input.District
	}
	if input.Ward != nil {
		property.Ward = *input.Ward
	}
	if input.Longitude != nil {
		property.Longitude = *input.Longitude
	}
	if input.Latitude != nil {
		property.Latitude = *input.Latitude
	}
	if input.StarRating != nil {
		property.StarRating = *input.StarRating
	}
	if input.Amenities != nil {
		property.Amenities = pq.StringArray(*input.Amenities)
	}
	if input.IsActive != nil {
		property.IsActive = *input.IsActive
	}

	if err := validator.ValidateProperty(property); err != nil {
		response.ValidationError(c, "Dữ liệu chỗ nghỉ không hợp lệ", err)
		return
	}

	// Listing bị từ chối hoặc yêu cầu sửa quay về pending khi merchant cập nhật
	if c.GetString("accountType") == constants.AccountTypeMerchant &&
		(property.ApprovalStatus == constants.ApprovalRejected ||
			property.ApprovalStatus == constants.ApprovalChangesRequested) {
		if err := services.ApplyApprovalTransition(&property.ApprovalInfo, constants.ApprovalPending, "", time.Now()); err != nil {
			respondAppError(c, err)
			return
		}
	}

	if err := db.Save(property).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	invalidatePropertyCache()
	response.Success(c, "Cập nhật chỗ nghỉ thành công", toPropertyResponse(*property))
}

// ChangePropertyApprovalStatus cho admin duyệt/từ chối chỗ nghỉ
func ChangePropertyApprovalStatus(c *gin.Context) {
	propertyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID chỗ nghỉ không hợp lệ")
		return
	}

	var input dto.ChangeApprovalStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	property, err := approvalService.TransitionProperty(uint(propertyID), input.Status, input.Reason)
	if err != nil {
		respondAppError(c, err)
		return
	}

	invalidatePropertyCache()
	response.Success(c, "Cập nhật trạng thái kiểm duyệt thành công", toPropertyResponse(*property))
}

// VerifyProperty cho admin bật/tắt cờ xác minh của chỗ nghỉ
func VerifyProperty(c *gin.Context) {
	propertyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID chỗ nghỉ không hợp lệ")
		return
	}

	var input dto.VerifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var property models.Property
	if err := db.First(&property, uint(propertyID)).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := db.Model(&property).Update("is_verified", input.IsVerified).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	property.IsVerified = input.IsVerified

	invalidatePropertyCache()
	response.Success(c, "Cập nhật xác minh thành công", toPropertyResponse(property))
}

// UpdatePropertyAmenities thay toàn bộ danh sách tiện nghi
func UpdatePropertyAmenities(c *gin.Context) {
	property, ok := loadPropertyForUpdate(c)
	if !ok {
		return
	}

	var input dto.UpdateAmenitiesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := db.Model(property).Update("amenities", pq.StringArray(input.Amenities)).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	property.Amenities = pq.StringArray(input.Amenities)

	invalidatePropertyCache()
	response.Success(c, "Cập nhật tiện nghi thành công", toPropertyResponse(*property))
}

// UploadPropertyImages upload ảnh lên Cloudinary rồi gắn vào chỗ nghỉ
func UploadPropertyImages(c *gin.Context) {
	property, ok := loadPropertyForUpdate(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "Không có file")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		response.BadRequest(c, "Không có file")
		return
	}

	images := property.Images
	for _, file := range files {
		result, err := storageService.UploadFile(c.Request.Context(), file, "properties", property.ID)
		if err != nil {
			response.ServerError(c, err)
			return
		}
		images = append(images, result.URL)
	}

	if err := db.Model(property).Update("images", images).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	property.Images = images

	invalidatePropertyCache()
	response.Success(c, "Upload ảnh thành công", toPropertyResponse(*property))
}

// DeleteProperty soft delete chỗ nghỉ
func DeleteProperty(c *gin.Context) {
	property, ok := loadPropertyForUpdate(c)
	if !ok {
		return
	}

	if err := db.Delete(property).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	invalidatePropertyCache()
	response.Success(c, "Xóa chỗ nghỉ thành công", nil)
}

// RestoreProperty khôi phục chỗ nghỉ đã soft delete
func RestoreProperty(c *gin.Context) {
	propertyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID chỗ nghỉ không hợp lệ")
		return
	}

	var property models.Property
	if err := db.Unscoped().First(&property, uint(propertyID)).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !canManageProperty(c, &property) {
		response.Forbidden(c)
		return
	}

	if err := db.Unscoped().Model(&property).Update("deleted_at", nil).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	invalidatePropertyCache()
	response.Success(c, "Khôi phục chỗ nghỉ thành công", toPropertyResponse(property))
}
