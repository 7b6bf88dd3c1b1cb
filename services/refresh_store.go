package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"vista/errors"
)

// RefreshTokenStore lưu refresh token trong Redis theo hash của token,
// để thu hồi được và không mất khi restart server.
type RefreshTokenStore struct {
	rdb *redis.Client
}

func NewRefreshTokenStore(rdb *redis.Client) *RefreshTokenStore {
	return &RefreshTokenStore{rdb: rdb}
}

func refreshTokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "refresh_token:" + hex.EncodeToString(sum[:])
}

// Save lưu refresh token với TTL
func (s *RefreshTokenStore) Save(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	return s.rdb.Set(ctx, refreshTokenKey(token), fmt.Sprintf("%d", userID), ttl).Err()
}

// Validate kiểm tra token còn hiệu lực và trả về userID
func (s *RefreshTokenStore) Validate(ctx context.Context, token string) (uint, error) {
	val, err := s.rdb.Get(ctx, refreshTokenKey(token)).Result()
	if err == redis.Nil {
		return 0, errors.NewAppError(errors.ErrCodeTokenRevoked, "Refresh token đã bị thu hồi hoặc hết hạn", nil)
	}
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Refresh token không hợp lệ", err)
	}
	return uint(userID), nil
}

// Revoke thu hồi một refresh token
func (s *RefreshTokenStore) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, refreshTokenKey(token)).Err()
}
