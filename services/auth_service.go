package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/smtp"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vista/config"
	"vista/constants"
	"vista/models"
)

// generateVerificationCode sinh mã xác thực 6 chữ số
func generateVerificationCode() (string, error) {
	code := ""

	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}

	return code, nil
}

func smtpSender() (string, smtp.Auth, string) {
	from := config.GetEnv("SMTP_FROM")
	password := config.GetEnv("SMTP_PASSWORD")
	host := config.GetEnv("SMTP_HOST")
	port := config.GetEnv("SMTP_PORT")
	if host == "" {
		host = "smtp.gmail.com"
	}
	if port == "" {
		port = "587"
	}

	return from, smtp.PlainAuth("", from, password, host), host + ":" + port
}

func sendVerificationEmail(email string, code string) error {
	from, auth, addr := smtpSender()
	to := []string{email}
	subject := "Subject: Mã xác thực tài khoản Vista\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Mã xác thực</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Chúng tôi đã nhận yêu cầu mã dùng một lần cho tài khoản của bạn.</p>
			<p>Mã xác thực của bạn là: <strong>%s</strong></p>
			<p>Nếu không yêu cầu mã này thì bạn có thể bỏ qua email này một cách an toàn. Có thể ai đó khác đã nhập địa chỉ email của bạn do nhầm lẫn.</p>
			<p>Xin cám ơn,<br>Nhóm tài khoản Vista</p>
		</body>
		</html>
	`, email, code)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)
	return smtp.SendMail(addr, auth, from, to, msg)
}

func sendWelcomeEmail(email string, phone string) error {
	from, auth, addr := smtpSender()
	to := []string{email}
	subject := "Subject: Bạn đã tạo tài khoản Vista\n"
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Tạo tài khoản thành công</title>
	</head>
	<body>
		<p>Xin chào,</p>
		<p>Chúc mừng! Bạn đã tạo tài khoản Vista thành công.</p>
		<ul>
			<li>Email: <strong>%s</strong></li>
			<li>Số điện thoại: <strong>%s</strong></li>
		</ul>
		<p>Nếu không yêu cầu tạo tài khoản này thì bạn có thể bỏ qua email này một cách an toàn.</p>
		<p>Xin cảm ơn,<br>Nhóm tài khoản Vista</p>
	</body>
	</html>`, email, phone)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)
	return smtp.SendMail(addr, auth, from, to, msg)
}

func sendNews(email string, title string, mess string) error {
	from, auth, addr := smtpSender()
	to := []string{email}
	subject := fmt.Sprintf("Subject: %s\n", title)
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>%s</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>%s</p>
			<p>Xin cám ơn,<br>Nhóm tài khoản Vista</p>
		</body>
		</html>
	`, title, email, mess)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)
	return smtp.SendMail(addr, auth, from, to, msg)
}

// SendBookingEmail gửi email xác nhận booking cho khách
func SendBookingEmail(email string, referenceCode string, totalAmount float64, checkInDate, checkOutDate string) error {
	from, auth, addr := smtpSender()
	to := []string{email}
	subject := "Subject: Đặt chỗ thành công\n"
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Đặt chỗ thành công</title>
	</head>
	<body>
		<p>Xin chào,</p>
		<p>Chúc mừng! Bạn đã đặt chỗ thành công.</p>
		<ul>
			<li>Mã đặt chỗ: <strong>%s</strong></li>
			<li>Ngày nhận phòng: <strong>%s</strong></li>
			<li>Ngày trả phòng: <strong>%s</strong></li>
			<li>Tổng giá trị: <strong>%.2f VND</strong></li>
		</ul>
		<p>Chúng tôi sẽ gửi cho bạn thông tin chi tiết khi có thay đổi.</p>
		<p>Xin cảm ơn,<br>Nhóm hỗ trợ Vista</p>
	</body>
	</html>`, referenceCode, checkInDate, checkOutDate, totalAmount)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)
	return smtp.SendMail(addr, auth, from, to, msg)
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func GetUserByPhoneNumber(phoneNumber string) (models.User, error) {
	var user models.User
	result := config.DB.Where("phone_number = ?", phoneNumber).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với số điện thoại %s", phoneNumber)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// CreateUser tạo user mới, băm mật khẩu và gửi email xác thực.
// Merchant nhận email mã xác thực, khách thường nhận email chào mừng.
func CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" || input.PhoneNumber == "" {
		return models.User{}, errors.New("không được để trống email, password, phone")
	}

	existingEmail, err := GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existingEmail.Email)
	}

	existingPhone, err := GetUserByPhoneNumber(input.PhoneNumber)
	if err == nil {
		return models.User{}, fmt.Errorf("số điện thoại %s đã được sử dụng", existingPhone.PhoneNumber)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:         input.Email,
		Password:      hashedPassword,
		PhoneNumber:   input.PhoneNumber,
		IsVerified:    false,
		Code:          code,
		CodeCreatedAt: time.Now(),
		AccountType:   input.AccountType,
		Name:          input.Name,
	}
	if user.AccountType == "" {
		user.AccountType = constants.AccountTypeCustomer
	}
	if err := user.ValidateAccountType(); err != nil {
		return models.User{}, err
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	if user.AccountType == constants.AccountTypeMerchant {
		err = sendVerificationEmail(input.Email, code)
	} else {
		err = sendWelcomeEmail(input.Email, input.PhoneNumber)
	}

	if err != nil {
		return user, err
	}

	return user, nil
}

// CreateGoogleUser tạo user từ Google sign-in, đã xác thực sẵn
func CreateGoogleUser(name, email, avatar string) (models.User, error) {
	existingEmail, err := GetUserByEmail(email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existingEmail.Email)
	}

	user := models.User{
		Name:        name,
		Email:       email,
		Password:    "",
		Avatar:      avatar,
		IsVerified:  true,
		AccountType: constants.AccountTypeCustomer,
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

// RegenerateVerificationCode cấp lại mã xác thực và gửi lại email
func RegenerateVerificationCode(userID uint) error {
	var user models.User
	result := config.DB.First(&user, userID)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("không tìm thấy người dùng với ID %d", userID)
	}

	if result.Error != nil {
		return result.Error
	}

	newCode, err := generateVerificationCode()
	if err != nil {
		return fmt.Errorf("không thể tạo mã xác minh mới: %v", err)
	}

	user.Code = newCode
	user.CodeCreatedAt = time.Now()

	if err := config.DB.Save(&user).Error; err != nil {
		return fmt.Errorf("không thể cập nhật mã xác minh: %v", err)
	}

	if err := sendVerificationEmail(user.Email, newCode); err != nil {
		return fmt.Errorf("không thể gửi email xác minh: %v", err)
	}

	return nil
}

// ResetPass cấp mã đặt lại mật khẩu và gửi qua email
func ResetPass(user models.User) error {
	newCode, err := generateVerificationCode()
	if err != nil {
		return fmt.Errorf("không thể tạo mã xác minh mới: %v", err)
	}

	user.Code = newCode
	user.CodeCreatedAt = time.Now()

	if err := config.DB.Save(&user).Error; err != nil {
		return fmt.Errorf("không thể cập nhật mã xác minh: %v", err)
	}

	if err := sendVerificationEmail(user.Email, newCode); err != nil {
		return fmt.Errorf("không thể gửi email xác minh: %v", err)
	}

	return nil
}

// NewPass cập nhật mật khẩu mới sau khi xác thực mã
func NewPass(user models.User, newPassword string) error {
	hashedPassword, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("không thể băm mật khẩu: %v", err)
	}

	user.Password = hashedPassword

	if err := config.DB.Save(&user).Error; err != nil {
		return fmt.Errorf("không thể cập nhật mật khẩu mới: %v", err)
	}

	if err := sendNews(user.Email, "Đổi mật khẩu", "Mật khẩu của bạn đã được cập nhật thành công."); err != nil {
		return fmt.Errorf("không thể gửi email xác nhận: %v", err)
	}

	return nil
}
