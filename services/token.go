package services

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"vista/config"
	"vista/errors"
)

// UserInfo là thông tin user nhúng trong token
type UserInfo struct {
	UserID      uint   `json:"userid"`
	AccountType string `json:"accountType"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// signingKey đọc khóa ký từ môi trường tại thời điểm dùng,
// sau khi .env đã được nạp, không đọc lúc khởi tạo package
func signingKey(isAccessToken bool) []byte {
	if isAccessToken {
		return []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
	}
	return []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))
}

// GenerateToken tạo access/refresh token cho user
func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(signingKey(isAccessToken))
}

// ParseToken xác thực chữ ký và trả về claims
func ParseToken(tokenString string, isAccessToken bool) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Phương thức ký token không hợp lệ", nil)
		}
		return signingKey(isAccessToken), nil
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}
	if !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}

	return claims, nil
}

// GetUserFromToken lấy userID và loại tài khoản từ access token
func GetUserFromToken(tokenString string) (uint, string, error) {
	claims, err := ParseToken(tokenString, true)
	if err != nil {
		return 0, "", err
	}
	return claims.UserInfo.UserID, claims.UserInfo.AccountType, nil
}

// ExtractToken lấy bearer token từ header Authorization hoặc cookie
func ExtractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			return authHeader[7:]
		}
		return authHeader
	}

	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

// SetTokenCookies gắn access token vào cookie
func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		true,
		false,
	)
}
