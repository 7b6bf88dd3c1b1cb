package controllers

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"

	"vista/constants"
	"vista/dto"
	"vista/models"
	"vista/response"
	"vista/services"
	"vista/validator"
)

const (
	accessTokenMinutes  = 60 * 24 * 3
	refreshTokenMinutes = 60 * 24 * 30
)

func toUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		AccountType: user.AccountType,
		Avatar:      user.Avatar,
		IsVerified:  user.IsVerified,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func issueTokens(c *gin.Context, user models.User) (*dto.LoginResponse, error) {
	userInfo := services.UserInfo{
		UserID:      user.ID,
		AccountType: user.AccountType,
	}

	accessToken, err := services.GenerateToken(userInfo, accessTokenMinutes, true)
	if err != nil {
		return nil, err
	}

	refreshToken, err := services.GenerateToken(userInfo, refreshTokenMinutes, false)
	if err != nil {
		return nil, err
	}

	// Refresh token chỉ dùng được khi còn trong Redis
	ttl := time.Duration(refreshTokenMinutes) * time.Minute
	if err := refreshStore.Save(c.Request.Context(), refreshToken, user.ID, ttl); err != nil {
		return nil, err
	}

	services.SetTokenCookies(c, accessToken)

	return &dto.LoginResponse{
		User:         toUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	candidate := models.User{
		Name:        input.Name,
		Email:       strings.ToLower(input.Email),
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		AccountType: input.AccountType,
	}
	if candidate.AccountType == "" {
		candidate.AccountType = constants.AccountTypeCustomer
	}
	if err := validator.ValidateUser(&candidate); err != nil {
		response.ValidationError(c, "Dữ liệu đăng ký không hợp lệ", err)
		return
	}

	user, err := services.CreateUser(candidate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, "Đăng ký thành công", toUserResponse(user))
}

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var user models.User
	if err := db.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	loginResponse, err := issueTokens(c, user)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Đăng nhập thành công", loginResponse)
}

// RefreshToken cấp lại cặp token mới từ refresh token còn hiệu lực.
// Token cũ bị thu hồi ngay sau khi dùng.
func RefreshToken(c *gin.Context) {
	var input dto.RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	claims, err := services.ParseToken(input.RefreshToken, false)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	if _, err := refreshStore.Validate(c.Request.Context(), input.RefreshToken); err != nil {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := db.First(&user, claims.UserInfo.UserID).Error; err != nil {
		response.Unauthorized(c)
		return
	}

	if err := refreshStore.Revoke(c.Request.Context(), input.RefreshToken); err != nil {
		log.Printf("Lỗi khi thu hồi refresh token: %v", err)
	}

	loginResponse, err := issueTokens(c, user)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Làm mới token thành công", loginResponse)
}

func Logout(c *gin.Context) {
	var input dto.RefreshInput
	if err := c.ShouldBindJSON(&input); err == nil && input.RefreshToken != "" {
		if err := refreshStore.Revoke(c.Request.Context(), input.RefreshToken); err != nil {
			log.Printf("Lỗi khi thu hồi refresh token: %v", err)
		}
	}

	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, "Đăng xuất thành công", nil)
}

func VerifyEmail(c *gin.Context) {
	code := c.Query("token")
	if code == "" {
		response.BadRequest(c, "Cần mã xác thực")
		return
	}

	var user models.User
	if err := db.Where("code = ?", code).First(&user).Error; err != nil {
		response.BadRequest(c, "Có lỗi xảy ra khi xác minh email")
		return
	}

	if time.Since(user.CodeCreatedAt) > 5*time.Minute {
		response.BadRequest(c, "Mã xác thực đã hết hạn. Vui lòng yêu cầu mã mới.")
		return
	}

	user.IsVerified = true
	user.Code = ""
	db.Save(&user)

	response.Success(c, "Xác minh email thành công", toUserResponse(user))
}

func VerifyCode(c *gin.Context) {
	var input dto.VerifyCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		response.BadRequest(c, "Không tìm thấy người dùng với email này")
		return
	}

	if user.Code != input.Code {
		response.BadRequest(c, "Mã xác thực không hợp lệ")
		return
	}

	if time.Since(user.CodeCreatedAt) > 5*time.Minute {
		response.BadRequest(c, "Mã xác thực đã hết hạn. Vui lòng yêu cầu mã mới.")
		return
	}

	user.Code = ""
	if !user.IsVerified {
		user.IsVerified = true
	}
	db.Save(&user)

	response.Success(c, "Xác thực mã thành công", nil)
}

func ResendVerificationCode(c *gin.Context) {
	var input dto.ResendVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := db.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Người dùng không tồn tại.")
		return
	}

	if err := services.RegenerateVerificationCode(user.ID); err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Đã gửi lại mã xác thực", nil)
}

func ForgetPassword(c *gin.Context) {
	var input dto.ForgetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := db.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Người dùng không tồn tại.")
		return
	}

	if err := services.ResetPass(user); err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Đã gửi mã đặt lại mật khẩu", nil)
}

func ResetPassword(c *gin.Context) {
	var input dto.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		response.BadRequest(c, "Người dùng không tồn tại.")
		return
	}

	if user.Code != input.Code {
		response.BadRequest(c, "Mã xác thực không hợp lệ")
		return
	}

	if time.Since(user.CodeCreatedAt) > 5*time.Minute {
		response.BadRequest(c, "Mã xác thực đã hết hạn. Vui lòng yêu cầu mã mới.")
		return
	}

	user.Code = ""
	db.Save(&user)

	if err := services.NewPass(user, input.NewPassword); err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Đặt lại mật khẩu thành công", nil)
}

// AuthGoogle xử lý đăng nhập bằng Google ID token
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := verifyGoogleIDToken(input.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	googleUser := dto.GoogleUser{
		Name:          payload.Claims["name"].(string),
		Email:         payload.Claims["email"].(string),
		VerifiedEmail: payload.Claims["email_verified"].(bool),
		Picture:       payload.Claims["picture"].(string),
	}
	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "Email chưa được Google xác minh")
		return
	}

	var user models.User
	result := db.Where("email = ?", googleUser.Email).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		user, err = services.CreateGoogleUser(googleUser.Name, googleUser.Email, googleUser.Picture)
		if err != nil {
			response.ServerError(c, err)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c, result.Error)
		return
	}

	loginResponse, err := issueTokens(c, user)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, "Đăng nhập Google thành công", loginResponse)
}

// verifyGoogleIDToken xác thực ID token từ Google
func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	return idtoken.Validate(context.Background(), tokenId, clientID)
}

// GetProfile trả về thông tin user hiện tại
func GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var user models.User
	if err := db.Preload("MerchantProfile").First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, "Lấy thông tin tài khoản thành công", user)
}
