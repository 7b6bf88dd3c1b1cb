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

func toRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:                 room.ID,
		PropertyID:         room.PropertyID,
		Name:               room.Name,
		Description:        room.Description,
		PricePerNight:      room.PricePerNight,
		MaxGuests:          room.MaxGuests,
		NumBed:             room.NumBed,
		NumToilet:          room.NumToilet,
		Acreage:            room.Acreage,
		Avatar:             room.Avatar,
		Images:             room.Images,
		Amenities:          room.Amenities,
		AvailabilityStatus: room.AvailabilityStatus,
		IsActive:           room.IsActive,
		VistaVerified:      room.VistaVerified,
		ApprovalStatus:     room.ApprovalStatus,
		RejectionReason:    room.RejectionReason,
		ApprovedAt:         room.ApprovedAt,
		CreatedAt:          room.CreatedAt,
		UpdatedAt:          room.UpdatedAt,
	}
}

// loadRoom lấy room và kiểm tra quyền thao tác qua property cha
func loadRoom(c *gin.Context, checkOwner bool) (*models.Room, bool) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return nil, false
	}

	var room models.Room
	if err := db.Preload("Property").First(&room, uint(roomID)).Error; err != nil {
		response.NotFound(c)
		return nil, false
	}

	if checkOwner && !canManageProperty(c, &room.Property) {
		response.Forbidden(c)
		return nil, false
	}

	return &room, true
}

// GetRooms liệt kê phòng của một property
func GetRooms(c *gin.Context) {
	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tx := db.Model(&models.Room{})
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

	var rooms []models.Room
	if err := tx.
		Order("created_at DESC").
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&rooms).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, toRoomResponse(room))
	}

	response.SuccessWithPagination(c, roomResponses, query.Page, query.Limit, int(total))
}

// CreateRoom tạo phòng mới trong một property của merchant
func CreateRoom(c *gin.Context) {
	var input dto.CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var property models.Property
	if err := db.First(&property, input.PropertyID).Error; err != nil {
		response.BadRequest(c, "Không tìm thấy chỗ nghỉ")
		return
	}

	if !canManageProperty(c, &property) {
		response.Forbidden(c)
		return
	}

	if err := validator.ValidatePrice(input.PricePerNight); err != nil {
		response.ValidationError(c, "Giá phòng không hợp lệ", err)
		return
	}

	room := models.Room{
		PropertyID:         property.ID,
		Name:               input.Name,
		Description:        input.Description,
		PricePerNight:      input.PricePerNight,
		MaxGuests:          input.MaxGuests,
		NumBed:             input.NumBed,
		NumToilet:          input.NumToilet,
		Acreage:            input.Acreage,
		Amenities:          pq.StringArray(input.Amenities),
		AvailabilityStatus: constants.AvailabilityAvailable,
		IsActive:           true,
	}
	if room.MaxGuests == 0 {
		room.MaxGuests = 2
	}

	if err := db.Create(&room).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Created(c, "Tạo phòng thành công", toRoomResponse(room))
}

// GetRoomDetail trả về chi tiết phòng
func GetRoomDetail(c *gin.Context) {
	room, ok := loadRoom(c, false)
	if !ok {
		return
	}

	response.Success(c, "Lấy chi tiết phòng thành công", toRoomResponse(*room))
}

// GetRoomBookedDates trả về các khoảng ngày đã có booking của phòng
func GetRoomBookedDates(c *gin.Context) {
	room, ok := loadRoom(c, false)
	if !ok {
		return
	}

	var bookings []models.Booking
	if err := db.Model(&models.Booking{}).
		Joins("JOIN booking_rooms ON booking_rooms.booking_id = bookings.id").
		Where("booking_rooms.room_id = ?", room.ID).
		Where("bookings.booking_status NOT IN ?", constants.ExcludedBookingStatuses).
		Where("bookings.check_out_date >= ?", time.Now()).
		Find(&bookings).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	type dateRange struct {
		CheckInDate  time.Time `json:"checkInDate"`
		CheckOutDate time.Time `json:"checkOutDate"`
	}
	ranges := make([]dateRange, 0, len(bookings))
	for _, booking := range bookings {
		ranges = append(ranges, dateRange{
			CheckInDate:  booking.CheckInDate,
			CheckOutDate: booking.CheckOutDate,
		})
	}

	response.Success(c, "Lấy lịch phòng thành công", ranges)
}

// UpdateRoom cập nhật thông tin phòng
func UpdateRoom(c *gin.Context) {
	room, ok := loadRoom(c, true)
	if !ok {
		return
	}

	var input dto.UpdateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Name != nil {
		room.Name = *input.Name
	}
	if input.Description != nil {
		room.Description = *input.Description
	}
	if input.PricePerNight != nil {
		room.PricePerNight = *input.PricePerNight
	}
	if input.MaxGuests != nil {
		room.MaxGuests = *input.MaxGuests
	}
	if input.NumBed != nil {
		room.NumBed = *input.NumBed
	}
	if input.NumToilet != nil {
		room.NumToilet = *input.NumToilet
	}
	if input.Acreage != nil {
		room.Acreage = *input.Acreage
	}
	if input.Amenities != nil {
		room.Amenities = pq.StringArray(*input.Amenities)
	}
	if input.IsActive != nil {
		room.IsActive = *input.IsActive
	}

	// Phòng bị từ chối quay về pending khi merchant cập nhật
	if c.GetString("accountType") == constants.AccountTypeMerchant &&
		(room.ApprovalStatus == constants.ApprovalRejected ||
			room.ApprovalStatus == constants.ApprovalChangesRequested) {
		if err := services.ApplyApprovalTransition(&room.ApprovalInfo, constants.ApprovalPending, "", time.Now()); err != nil {
			respondAppError(c, err)
			return
		}
	}

	if err := db.Save(room).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Cập nhật phòng thành công", toRoomResponse(*room))
}

// ChangeRoomAvailabilityStatus đổi trạng thái khả dụng thủ công (bảo trì, lưu trữ)
func ChangeRoomAvailabilityStatus(c *gin.Context) {
	room, ok := loadRoom(c, true)
	if !ok {
		return
	}

	var input dto.UpdateAvailabilityStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room.AvailabilityStatus = input.AvailabilityStatus
	if err := room.ValidateAvailabilityStatus(); err != nil {
		response.BadRequest(c, "Trạng thái khả dụng không hợp lệ")
		return
	}

	if err := db.Model(room).Update("availability_status", room.AvailabilityStatus).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Cập nhật trạng thái phòng thành công", toRoomResponse(*room))
}

// ChangeRoomApprovalStatus cho admin duyệt/từ chối phòng
func ChangeRoomApprovalStatus(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var input dto.ChangeApprovalStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room, err := approvalService.TransitionRoom(uint(roomID), input.Status, input.Reason)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, "Cập nhật trạng thái kiểm duyệt thành công", toRoomResponse(*room))
}

// UploadRoomImages upload ảnh phòng lên Cloudinary
func UploadRoomImages(c *gin.Context) {
	room, ok := loadRoom(c, true)
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

	images := room.Images
	for _, file := range files {
		result, err := storageService.UploadFile(c.Request.Context(), file, "rooms", room.ID)
		if err != nil {
			response.ServerError(c, err)
			return
		}
		images = append(images, result.URL)
	}

	if err := db.Model(room).Update("images", images).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	room.Images = images

	response.Success(c, "Upload ảnh thành công", toRoomResponse(*room))
}

// DeleteRoom soft delete phòng
func DeleteRoom(c *gin.Context) {
	room, ok := loadRoom(c, true)
	if !ok {
		return
	}

	if err := db.Delete(room).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Xóa phòng thành công", nil)
}
