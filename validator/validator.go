package validator

import (
	"regexp"
	"time"

	"vista/errors"
	"vista/models"
)

// DateLayout là định dạng ngày trên toàn API
const DateLayout = "2006-01-02"

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if err := user.ValidateAccountType(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Loại tài khoản không hợp lệ", err)
	}

	return nil
}

// ParseBookingDates parse và validate khoảng ngày đặt chỗ
func ParseBookingDates(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(DateLayout, checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày nhận phòng không hợp lệ", err)
	}

	checkOut, err := time.Parse(DateLayout, checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày trả phòng không hợp lệ", err)
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	today := time.Now().Truncate(24 * time.Hour)
	if checkIn.Before(today) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Ngày nhận phòng không được ở quá khứ", nil)
	}

	return checkIn, checkOut, nil
}

// ValidateProperty validate thông tin chỗ nghỉ trước khi tạo
func ValidateProperty(property *models.Property) error {
	if property.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên chỗ nghỉ không được để trống", nil)
	}

	if property.Address == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Địa chỉ không được để trống", nil)
	}

	if property.Province == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tỉnh thành không được để trống", nil)
	}

	if property.StarRating < 0 || property.StarRating > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Xếp hạng sao phải từ 0 đến 5", nil)
	}

	return nil
}

// ValidateMerchant validate hồ sơ merchant trước khi tạo
func ValidateMerchant(merchant *models.MerchantProfile) error {
	if merchant.BusinessName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên doanh nghiệp không được để trống", nil)
	}

	if merchant.RegistrationNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mã số đăng ký kinh doanh không được để trống", nil)
	}

	if !isValidRegistrationNumber(merchant.RegistrationNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Mã số đăng ký kinh doanh không hợp lệ", nil)
	}

	return nil
}

// ValidatePrice validate giá tiền
func ValidatePrice(price float64) error {
	if price <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá phải lớn hơn 0", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}

// isValidRegistrationNumber kiểm tra mã số đăng ký kinh doanh hợp lệ
func isValidRegistrationNumber(registration string) bool {
	registrationRegex := regexp.MustCompile(`^[0-9]{10,14}$`)
	return registrationRegex.MatchString(registration)
}
