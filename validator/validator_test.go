package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vista/constants"
	"vista/errors"
	"vista/models"
)

func TestValidateUser(t *testing.T) {
	valid := models.User{
		Email:       "merchant@vista.vn",
		Password:    "secret123",
		PhoneNumber: "0912345678",
		AccountType: constants.AccountTypeMerchant,
	}
	assert.NoError(t, ValidateUser(&valid))

	cases := []struct {
		name   string
		mutate func(u *models.User)
		code   errors.ErrorCode
	}{
		{"thiếu email", func(u *models.User) { u.Email = "" }, errors.ErrCodeRequiredField},
		{"email sai định dạng", func(u *models.User) { u.Email = "not-an-email" }, errors.ErrCodeInvalidEmail},
		{"mật khẩu ngắn", func(u *models.User) { u.Password = "abc" }, errors.ErrCodeValidation},
		{"số điện thoại sai", func(u *models.User) { u.PhoneNumber = "123" }, errors.ErrCodeInvalidPhone},
		{"loại tài khoản lạ", func(u *models.User) { u.AccountType = "alien" }, errors.ErrCodeInvalidRole},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user := valid
			tc.mutate(&user)
			err := ValidateUser(&user)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tc.code))
		})
	}
}

func TestParseBookingDates(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(DateLayout)
	nextWeek := time.Now().AddDate(0, 0, 7).Format(DateLayout)

	checkIn, checkOut, err := ParseBookingDates(tomorrow, nextWeek)
	require.NoError(t, err)
	assert.True(t, checkOut.After(checkIn))
}

func TestParseBookingDatesRejectsBadInput(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(DateLayout)
	nextWeek := time.Now().AddDate(0, 0, 7).Format(DateLayout)

	cases := []struct {
		name     string
		in, out  string
		code     errors.ErrorCode
	}{
		{"định dạng sai", "01-09-2026", nextWeek, errors.ErrCodeInvalidFormat},
		{"checkout trước checkin", nextWeek, tomorrow, errors.ErrCodeValidation},
		{"checkout bằng checkin", tomorrow, tomorrow, errors.ErrCodeValidation},
		{"checkin trong quá khứ", "2020-01-01", "2020-01-05", errors.ErrCodeValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseBookingDates(tc.in, tc.out)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tc.code))
		})
	}
}

func TestValidateMerchant(t *testing.T) {
	valid := models.MerchantProfile{
		BusinessName:       "Công ty Du lịch Biển Xanh",
		RegistrationNumber: "0123456789",
	}
	assert.NoError(t, ValidateMerchant(&valid))

	missingName := valid
	missingName.BusinessName = ""
	assert.True(t, errors.IsCode(ValidateMerchant(&missingName), errors.ErrCodeRequiredField))

	badRegistration := valid
	badRegistration.RegistrationNumber = "abc"
	assert.True(t, errors.IsCode(ValidateMerchant(&badRegistration), errors.ErrCodeInvalidFormat))
}

func TestValidateProperty(t *testing.T) {
	valid := models.Property{
		Name:     "Vista Beach Hotel",
		Address:  "1 Trần Phú",
		Province: "Đà Nẵng",
	}
	assert.NoError(t, ValidateProperty(&valid))

	tooManyStars := valid
	tooManyStars.StarRating = 7
	assert.True(t, errors.IsCode(ValidateProperty(&tooManyStars), errors.ErrCodeValidation))
}
