package models

import (
	"errors"

	"vista/constants"
)

// BookingState định nghĩa interface cho các trạng thái booking
type BookingState interface {
	Confirm(booking *Booking) error
	Cancel(booking *Booking) error
	Complete(booking *Booking) error
	Fail(booking *Booking) error
}

// PendingState trạng thái chờ xác nhận
type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) error {
	booking.BookingStatus = constants.BookingStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(booking *Booking) error {
	booking.BookingStatus = constants.BookingStatusCancelled
	return nil
}

func (s *PendingState) Complete(booking *Booking) error {
	return errors.New("cannot complete pending booking")
}

func (s *PendingState) Fail(booking *Booking) error {
	booking.BookingStatus = constants.BookingStatusFailed
	return nil
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(booking *Booking) error {
	return errors.New("booking already confirmed")
}

func (s *ConfirmedState) Cancel(booking *Booking) error {
	booking.BookingStatus = constants.BookingStatusCancelled
	return nil
}

func (s *ConfirmedState) Complete(booking *Booking) error {
	booking.BookingStatus = constants.BookingStatusCompleted
	return nil
}

func (s *ConfirmedState) Fail(booking *Booking) error {
	return errors.New("cannot fail confirmed booking")
}

// CompletedState trạng thái hoàn thành
type CompletedState struct{}

func (s *CompletedState) Confirm(booking *Booking) error {
	return errors.New("booking already completed")
}

func (s *CompletedState) Cancel(booking *Booking) error {
	return errors.New("cannot cancel completed booking")
}

func (s *CompletedState) Complete(booking *Booking) error {
	return errors.New("booking already completed")
}

func (s *CompletedState) Fail(booking *Booking) error {
	return errors.New("cannot fail completed booking")
}

// CancelledState trạng thái đã hủy
type CancelledState struct{}

func (s *CancelledState) Confirm(booking *Booking) error {
	return errors.New("cannot confirm cancelled booking")
}

func (s *CancelledState) Cancel(booking *Booking) error {
	return errors.New("booking already cancelled")
}

func (s *CancelledState) Complete(booking *Booking) error {
	return errors.New("cannot complete cancelled booking")
}

func (s *CancelledState) Fail(booking *Booking) error {
	return errors.New("cannot fail cancelled booking")
}

// FailedState trạng thái thanh toán thất bại
type FailedState struct{}

func (s *FailedState) Confirm(booking *Booking) error {
	return errors.New("cannot confirm failed booking")
}

func (s *FailedState) Cancel(booking *Booking) error {
	return errors.New("cannot cancel failed booking")
}

func (s *FailedState) Complete(booking *Booking) error {
	return errors.New("cannot complete failed booking")
}

func (s *FailedState) Fail(booking *Booking) error {
	return errors.New("booking already failed")
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusPending:
		return &PendingState{}
	case constants.BookingStatusConfirmed:
		return &ConfirmedState{}
	case constants.BookingStatusCompleted:
		return &CompletedState{}
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	case constants.BookingStatusFailed:
		return &FailedState{}
	default:
		return &PendingState{}
	}
}

// ApplyStatus chuyển booking sang trạng thái đích theo state machine
func ApplyStatus(booking *Booking, target string) error {
	state := GetBookingState(booking.BookingStatus)
	switch target {
	case constants.BookingStatusConfirmed:
		return state.Confirm(booking)
	case constants.BookingStatusCancelled:
		return state.Cancel(booking)
	case constants.BookingStatusCompleted:
		return state.Complete(booking)
	case constants.BookingStatusFailed:
		return state.Fail(booking)
	default:
		return errors.New("unknown booking status: " + target)
	}
}
