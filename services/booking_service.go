package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vista/constants"
	"vista/errors"
	"vista/models"
	"vista/services/logger"
)

// BookingService xử lý nghiệp vụ đặt chỗ: kiểm tra trùng ngày, tạo booking
// và lan truyền trạng thái khả dụng trong cùng một transaction.
type BookingService struct {
	db       *gorm.DB
	log      logger.Logger
	notifier *Notifier
}

type BookingServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Notifier *Notifier
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		db:       opts.DB,
		log:      l,
		notifier: opts.Notifier,
	}
}

// CreateBookingInput là dữ liệu đã validate để tạo booking
type CreateBookingInput struct {
	CustomerID      uint
	RoomIDs         []uint
	HomeStayID      *uint
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumberOfGuests  int
	SpecialRequests string
}

// kiểm tra phòng/homestay đủ điều kiện nhận booking mới,
// chạy trước bước kiểm tra trùng ngày
func checkBookable(isActive bool, approvalStatus, availabilityStatus string) error {
	if !isActive {
		return errors.NewAppError(errors.ErrCodeNotAvailable, "Chỗ nghỉ đang tạm ngừng hoạt động", nil)
	}
	if approvalStatus != constants.ApprovalApproved {
		return errors.NewAppError(errors.ErrCodeNotAvailable, "Chỗ nghỉ chưa được duyệt", nil)
	}
	if availabilityStatus != constants.AvailabilityAvailable {
		return errors.NewAppError(errors.ErrCodeNotAvailable, "Chỗ nghỉ không ở trạng thái sẵn sàng", nil)
	}
	return nil
}

// CreateBooking tạo booking mới. Toàn bộ kiểm tra trùng ngày, insert booking,
// bảng nối và cập nhật khả dụng nằm trong một transaction.
func (s *BookingService) CreateBooking(input CreateBookingInput) (*models.Booking, error) {
	if len(input.RoomIDs) == 0 && input.HomeStayID == nil {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Cần chọn ít nhất một phòng hoặc homestay", nil)
	}
	if !input.CheckOutDate.After(input.CheckInDate) {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	booking := models.Booking{
		ReferenceCode:  uuid.NewString(),
		CustomerID:     input.CustomerID,
		CheckInDate:    input.CheckInDate,
		CheckOutDate:   input.CheckOutDate,
		BookingStatus:  constants.BookingStatusPending,
		PaymentStatus:  constants.PaymentStatusPending,
		NumberOfGuests: input.NumberOfGuests,
	}
	if booking.NumberOfGuests < 1 {
		booking.NumberOfGuests = 1
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		nights := booking.Nights()
		totalAmount := 0.0

		for _, roomID := range input.RoomIDs {
			var room models.Room
			if err := tx.First(&room, roomID).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy phòng", err)
			}
			if err := checkBookable(room.IsActive, room.ApprovalStatus, room.AvailabilityStatus); err != nil {
				return err
			}

			available, err := RoomIsAvailable(tx, room.ID, input.CheckInDate, input.CheckOutDate)
			if err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không kiểm tra được lịch phòng", err)
			}
			if !available {
				return errors.NewAppError(errors.ErrCodeBookingConflict,
					"Phòng "+room.Name+" đã được đặt trong khoảng thời gian này", nil)
			}

			totalAmount += room.PricePerNight * float64(nights)
			booking.Rooms = append(booking.Rooms, room)
		}

		if input.HomeStayID != nil {
			var homestay models.HomeStay
			if err := tx.First(&homestay, *input.HomeStayID).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy homestay", err)
			}
			if err := checkBookable(homestay.IsActive, homestay.ApprovalStatus, homestay.AvailabilityStatus); err != nil {
				return err
			}

			available, err := HomeStayIsAvailable(tx, homestay.ID, input.CheckInDate, input.CheckOutDate)
			if err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không kiểm tra được lịch homestay", err)
			}
			if !available {
				return errors.NewAppError(errors.ErrCodeBookingConflict,
					"Homestay "+homestay.Name+" đã được đặt trong khoảng thời gian này", nil)
			}

			totalAmount += homestay.PricePerNight * float64(nights)
			booking.HomeStays = append(booking.HomeStays, homestay)
		}

		booking.TotalAmount = totalAmount

		// Omit các association để tự ghi bảng nối kèm specialRequests
		if err := tx.Omit("Rooms", "HomeStays").Create(&booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không tạo được booking", err)
		}

		for _, room := range booking.Rooms {
			junction := models.BookingRoom{
				BookingID:       booking.ID,
				RoomID:          room.ID,
				SpecialRequests: input.SpecialRequests,
			}
			if err := tx.Create(&junction).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không gắn được phòng vào booking", err)
			}
		}

		for _, homestay := range booking.HomeStays {
			junction := models.BookingHomeStay{
				BookingID:       booking.ID,
				HomeStayID:      homestay.ID,
				SpecialRequests: input.SpecialRequests,
			}
			if err := tx.Create(&junction).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không gắn được homestay vào booking", err)
			}
		}

		return PropagateAvailability(tx, &booking)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Tạo booking %s cho khách %d", booking.ReferenceCode, booking.CustomerID)
	s.notifier.BookingEvent("booking.created", &booking)
	return &booking, nil
}

// ChangeStatus chuyển trạng thái booking theo state machine rồi lan truyền
// trạng thái khả dụng cho phòng/homestay, tất cả trong một transaction.
func (s *BookingService) ChangeStatus(bookingID uint, target string) (*models.Booking, error) {
	var booking models.Booking

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Rooms").Preload("HomeStays").First(&booking, bookingID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy booking", err)
		}

		if err := models.ApplyStatus(&booking, target); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidTransition, err.Error(), err)
		}

		if err := tx.Model(&booking).Update("booking_status", booking.BookingStatus).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được trạng thái booking", err)
		}

		return PropagateAvailability(tx, &booking)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking %s chuyển sang %s", booking.ReferenceCode, booking.BookingStatus)
	s.notifier.BookingEvent("booking.status_changed", &booking)
	return &booking, nil
}

// UpdatePaymentStatus cập nhật trạng thái thanh toán; thanh toán đủ thì xác
// nhận booking, thanh toán thất bại thì chuyển booking sang failed.
func (s *BookingService) UpdatePaymentStatus(bookingID uint, paymentStatus string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy booking", err)
	}

	if err := s.db.Model(&booking).Update("payment_status", paymentStatus).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được trạng thái thanh toán", err)
	}

	switch paymentStatus {
	case constants.PaymentStatusPaid:
		if booking.BookingStatus == constants.BookingStatusPending {
			return s.ChangeStatus(bookingID, constants.BookingStatusConfirmed)
		}
	case constants.PaymentStatusPartiallyPaid:
		// đặt cọc: booking giữ nguyên pending cho tới khi thanh toán đủ
	case constants.PaymentStatusFailed:
		if booking.BookingStatus == constants.BookingStatusPending {
			return s.ChangeStatus(bookingID, constants.BookingStatusFailed)
		}
	}

	booking.PaymentStatus = paymentStatus
	return &booking, nil
}

// SoftDelete hủy booking (nếu còn hủy được) rồi soft delete
func (s *BookingService) SoftDelete(bookingID uint) error {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy booking", err)
	}

	if booking.BookingStatus == constants.BookingStatusPending ||
		booking.BookingStatus == constants.BookingStatusConfirmed {
		if _, err := s.ChangeStatus(bookingID, constants.BookingStatusCancelled); err != nil {
			return err
		}
	}

	return s.db.Delete(&models.Booking{}, bookingID).Error
}

// ListBookings trả về danh sách booking theo vai trò:
// admin thấy tất cả, merchant thấy booking trên chỗ nghỉ của mình,
// khách thấy booking của chính mình.
func (s *BookingService) ListBookings(actorID uint, accountType string, page, limit int) ([]models.Booking, int64, error) {
	baseTx := s.db.Model(&models.Booking{}).
		Preload("Customer").
		Preload("Rooms").
		Preload("HomeStays")

	switch accountType {
	case constants.AccountTypeAdmin:
		// admin thấy tất cả
	case constants.AccountTypeMerchant:
		var merchant models.MerchantProfile
		if err := s.db.Where("user_id = ?", actorID).First(&merchant).Error; err != nil {
			return nil, 0, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy hồ sơ merchant", err)
		}

		propertyIDs := s.db.Model(&models.Property{}).
			Select("id").
			Where("merchant_profile_id = ?", merchant.ID)

		baseTx = baseTx.Where(
			"bookings.id IN (?) OR bookings.id IN (?)",
			s.db.Model(&models.BookingRoom{}).
				Select("booking_rooms.booking_id").
				Joins("JOIN rooms ON rooms.id = booking_rooms.room_id").
				Where("rooms.property_id IN (?)", propertyIDs),
			s.db.Model(&models.BookingHomeStay{}).
				Select("booking_home_stays.booking_id").
				Joins("JOIN home_stays ON home_stays.id = booking_home_stays.home_stay_id").
				Where("home_stays.property_id IN (?)", propertyIDs),
		)
	default:
		baseTx = baseTx.Where("customer_id = ?", actorID)
	}

	var total int64
	if err := baseTx.Count(&total).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Không đếm được booking", err)
	}

	var bookings []models.Booking
	if err := baseTx.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Không lấy được danh sách booking", err)
	}

	return bookings, total, nil
}

// bookingOnProperties kiểm tra booking có phòng hoặc homestay
// nằm trong tập property cho trước hay không
func bookingOnProperties(booking *models.Booking, propertyIDs map[uint]struct{}) bool {
	for _, room := range booking.Rooms {
		if _, ok := propertyIDs[room.PropertyID]; ok {
			return true
		}
	}
	for _, homestay := range booking.HomeStays {
		if _, ok := propertyIDs[homestay.PropertyID]; ok {
			return true
		}
	}
	return false
}

// MerchantOwnsBooking kiểm tra booking có chứa phòng/homestay thuộc chỗ nghỉ
// của merchant đang đăng nhập hay không. Merchant chỉ được thao tác trên
// booking của chỗ nghỉ mình sở hữu.
func (s *BookingService) MerchantOwnsBooking(actorID, bookingID uint) (bool, error) {
	var merchant models.MerchantProfile
	if err := s.db.Where("user_id = ?", actorID).First(&merchant).Error; err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy hồ sơ merchant", err)
	}

	booking, err := s.GetBooking(bookingID)
	if err != nil {
		return false, err
	}

	var ids []uint
	if err := s.db.Model(&models.Property{}).
		Where("merchant_profile_id = ?", merchant.ID).
		Pluck("id", &ids).Error; err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Không kiểm tra được quyền trên booking", err)
	}

	propertyIDs := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		propertyIDs[id] = struct{}{}
	}
	return bookingOnProperties(booking, propertyIDs), nil
}

// GetBooking lấy booking theo id kèm phòng, homestay và khách
func (s *BookingService) GetBooking(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.
		Preload("Customer").
		Preload("Rooms").
		Preload("HomeStays").
		First(&booking, bookingID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy booking", err)
	}
	return &booking, nil
}

// CompletePastCheckouts chuyển các booking đã qua ngày trả phòng sang
// completed và trả phòng/homestay về available. Chạy bởi cron hàng ngày.
func (s *BookingService) CompletePastCheckouts(now time.Time) (int, error) {
	var bookings []models.Booking
	if err := s.db.
		Where("booking_status = ?", constants.BookingStatusConfirmed).
		Where("check_out_date < ?", now).
		Find(&bookings).Error; err != nil {
		return 0, err
	}

	completed := 0
	for _, booking := range bookings {
		if _, err := s.ChangeStatus(booking.ID, constants.BookingStatusCompleted); err != nil {
			s.log.Error("Không hoàn tất được booking %d: %v", booking.ID, err)
			continue
		}
		completed++
	}

	return completed, nil
}
