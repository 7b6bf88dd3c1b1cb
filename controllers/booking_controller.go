package controllers

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"vista/constants"
	"vista/dto"
	"vista/errors"
	"vista/models"
	"vista/response"
	"vista/services"
	"vista/validator"
)

func toBookingResponse(booking models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:             booking.ID,
		ReferenceCode:  booking.ReferenceCode,
		CustomerID:     booking.CustomerID,
		CheckInDate:    booking.CheckInDate,
		CheckOutDate:   booking.CheckOutDate,
		TotalAmount:    booking.TotalAmount,
		BookingStatus:  booking.BookingStatus,
		PaymentStatus:  booking.PaymentStatus,
		NumberOfGuests: booking.NumberOfGuests,
		CreatedAt:      booking.CreatedAt,
	}
	if booking.Customer.ID != 0 {
		resp.CustomerName = booking.Customer.Name
	}
	for _, room := range booking.Rooms {
		resp.Rooms = append(resp.Rooms, dto.BookingEntityResponse{
			ID:            room.ID,
			Name:          room.Name,
			PricePerNight: room.PricePerNight,
		})
	}
	for _, homestay := range booking.HomeStays {
		resp.HomeStays = append(resp.HomeStays, dto.BookingEntityResponse{
			ID:            homestay.ID,
			Name:          homestay.Name,
			PricePerNight: homestay.PricePerNight,
		})
	}
	return resp
}

func respondAppError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c, err)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeDBNotFound:
		response.NotFound(c)
	case errors.ErrCodeBookingConflict, errors.ErrCodeQuotaExceeded, errors.ErrCodeDuplicateSlug:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeDBError:
		response.ServerError(c, appErr)
	default:
		response.BadRequest(c, appErr.Message)
	}
}

// CreateBooking tạo booking mới cho khách đang đăng nhập
func CreateBooking(c *gin.Context) {
	var input dto.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkIn, checkOut, err := validator.ParseBookingDates(input.CheckInDate, input.CheckOutDate)
	if err != nil {
		response.ValidationError(c, "Khoảng ngày đặt chỗ không hợp lệ", err)
		return
	}

	booking, err := bookingService.CreateBooking(services.CreateBookingInput{
		CustomerID:      c.GetUint("userID"),
		RoomIDs:         input.RoomIDs,
		HomeStayID:      input.HomeStayID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  input.NumberOfGuests,
		SpecialRequests: input.SpecialRequests,
	})
	if err != nil {
		respondAppError(c, err)
		return
	}

	var customer models.User
	if err := db.First(&customer, booking.CustomerID).Error; err == nil {
		go func(email, code string, total float64, checkIn, checkOut string) {
			if err := services.SendBookingEmail(email, code, total, checkIn, checkOut); err != nil {
				log.Printf("Lỗi khi gửi email xác nhận booking %s: %v", code, err)
			}
		}(customer.Email, booking.ReferenceCode, booking.TotalAmount,
			booking.CheckInDate.Format(validator.DateLayout),
			booking.CheckOutDate.Format(validator.DateLayout))
	}

	response.Created(c, "Tạo booking thành công", toBookingResponse(*booking))
}

// GetBookings liệt kê booking theo vai trò của người gọi
func GetBookings(c *gin.Context) {
	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	bookings, total, err := bookingService.ListBookings(
		c.GetUint("userID"),
		c.GetString("accountType"),
		query.Page,
		query.Limit,
	)
	if err != nil {
		respondAppError(c, err)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, toBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, query.Page, query.Limit, int(total))
}

// assertMerchantOwnsBooking chặn merchant thao tác trên booking
// không thuộc chỗ nghỉ của mình; trả về false nếu đã respond lỗi
func assertMerchantOwnsBooking(c *gin.Context, bookingID uint) bool {
	if c.GetString("accountType") != constants.AccountTypeMerchant {
		return true
	}
	owns, err := bookingService.MerchantOwnsBooking(c.GetUint("userID"), bookingID)
	if err != nil {
		respondAppError(c, err)
		return false
	}
	if !owns {
		response.Forbidden(c)
		return false
	}
	return true
}

// GetBookingDetail trả về chi tiết một booking
func GetBookingDetail(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	booking, err := bookingService.GetBooking(uint(bookingID))
	if err != nil {
		respondAppError(c, err)
		return
	}

	// Khách chỉ xem được booking của mình, merchant chỉ xem được
	// booking trên chỗ nghỉ của mình
	accountType := c.GetString("accountType")
	if accountType == constants.AccountTypeCustomer && booking.CustomerID != c.GetUint("userID") {
		response.Forbidden(c)
		return
	}
	if !assertMerchantOwnsBooking(c, uint(bookingID)) {
		return
	}

	response.Success(c, "Lấy chi tiết booking thành công", toBookingResponse(*booking))
}

// ChangeBookingStatus chuyển trạng thái booking theo state machine
func ChangeBookingStatus(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	var input dto.ChangeBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Khách chỉ được hủy booking của mình
	accountType := c.GetString("accountType")
	if accountType == constants.AccountTypeCustomer {
		if input.Status != constants.BookingStatusCancelled {
			response.Forbidden(c)
			return
		}
		booking, err := bookingService.GetBooking(uint(bookingID))
		if err != nil {
			respondAppError(c, err)
			return
		}
		if booking.CustomerID != c.GetUint("userID") {
			response.Forbidden(c)
			return
		}
	}

	// Merchant chỉ được đổi trạng thái booking trên chỗ nghỉ của mình
	if !assertMerchantOwnsBooking(c, uint(bookingID)) {
		return
	}

	booking, err := bookingService.ChangeStatus(uint(bookingID), input.Status)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, "Cập nhật trạng thái booking thành công", toBookingResponse(*booking))
}

// UpdatePaymentStatus cập nhật trạng thái thanh toán của booking
func UpdatePaymentStatus(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	var input dto.UpdatePaymentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Merchant chỉ được cập nhật thanh toán trên chỗ nghỉ của mình
	if !assertMerchantOwnsBooking(c, uint(bookingID)) {
		return
	}

	booking, err := bookingService.UpdatePaymentStatus(uint(bookingID), input.PaymentStatus)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, "Cập nhật trạng thái thanh toán thành công", toBookingResponse(*booking))
}

// DeleteBooking hủy (nếu cần) rồi soft delete booking
func DeleteBooking(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	accountType := c.GetString("accountType")
	if accountType == constants.AccountTypeCustomer {
		booking, err := bookingService.GetBooking(uint(bookingID))
		if err != nil {
			respondAppError(c, err)
			return
		}
		if booking.CustomerID != c.GetUint("userID") {
			response.Forbidden(c)
			return
		}
	}

	if !assertMerchantOwnsBooking(c, uint(bookingID)) {
		return
	}

	if err := bookingService.SoftDelete(uint(bookingID)); err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, "Xóa booking thành công", nil)
}
