package services

import (
	"time"

	"gorm.io/gorm"

	"vista/constants"
	"vista/models"
)

// RangesOverlap kiểm tra hai khoảng ngày có chồng nhau không.
// Biên bao gồm cả hai đầu: trả phòng ngày N và nhận phòng ngày N vẫn tính là trùng.
func RangesOverlap(aCheckIn, aCheckOut, bCheckIn, bCheckOut time.Time) bool {
	return !aCheckIn.After(bCheckOut) && !aCheckOut.Before(bCheckIn)
}

// RoomIsAvailable đếm các booking còn hiệu lực trùng khoảng ngày trên phòng.
// Booking cancelled/failed không tính.
func RoomIsAvailable(db *gorm.DB, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := db.Model(&models.Booking{}).
		Joins("JOIN booking_rooms ON booking_rooms.booking_id = bookings.id").
		Where("booking_rooms.room_id = ?", roomID).
		Where("bookings.booking_status NOT IN ?", constants.ExcludedBookingStatuses).
		Where("bookings.check_in_date <= ? AND bookings.check_out_date >= ?", checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// HomeStayIsAvailable tương tự RoomIsAvailable cho homestay
func HomeStayIsAvailable(db *gorm.DB, homestayID uint, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := db.Model(&models.Booking{}).
		Joins("JOIN booking_home_stays ON booking_home_stays.booking_id = bookings.id").
		Where("booking_home_stays.home_stay_id = ?", homestayID).
		Where("bookings.booking_status NOT IN ?", constants.ExcludedBookingStatuses).
		Where("bookings.check_in_date <= ? AND bookings.check_out_date >= ?", checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// AvailabilityForBookingStatus ánh xạ trạng thái booking sang trạng thái
// khả dụng của các phòng/homestay trong booking.
func AvailabilityForBookingStatus(bookingStatus string) (string, bool) {
	switch bookingStatus {
	case constants.BookingStatusPending:
		return constants.AvailabilityUnavailable, true
	case constants.BookingStatusConfirmed:
		return constants.AvailabilityBooked, true
	case constants.BookingStatusCompleted,
		constants.BookingStatusCancelled,
		constants.BookingStatusFailed:
		return constants.AvailabilityAvailable, true
	}
	return "", false
}

// PropagateAvailability cập nhật trạng thái khả dụng cho toàn bộ phòng và
// homestay gắn với booking. Phải gọi trong cùng transaction với thao tác đổi
// trạng thái booking để hai phía luôn nhất quán.
func PropagateAvailability(tx *gorm.DB, booking *models.Booking) error {
	target, ok := AvailabilityForBookingStatus(booking.BookingStatus)
	if !ok {
		return nil
	}

	if len(booking.Rooms) > 0 {
		roomIDs := make([]uint, 0, len(booking.Rooms))
		for _, room := range booking.Rooms {
			roomIDs = append(roomIDs, room.ID)
		}
		if err := tx.Model(&models.Room{}).
			Where("id IN ?", roomIDs).
			Update("availability_status", target).Error; err != nil {
			return err
		}
	}

	if len(booking.HomeStays) > 0 {
		homestayIDs := make([]uint, 0, len(booking.HomeStays))
		for _, hs := range booking.HomeStays {
			homestayIDs = append(homestayIDs, hs.ID)
		}
		if err := tx.Model(&models.HomeStay{}).
			Where("id IN ?", homestayIDs).
			Update("availability_status", target).Error; err != nil {
			return err
		}
	}

	return nil
}
