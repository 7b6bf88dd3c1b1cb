package controllers

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"vista/services"
)

// Các service dùng chung cho controllers, gán một lần lúc khởi động
var (
	db              *gorm.DB
	redisCli        *redis.Client
	bookingService  *services.BookingService
	approvalService *services.ApprovalService
	quotaGuard      *services.QuotaGuard
	refreshStore    *services.RefreshTokenStore
	storageService  *services.StorageService
	notifier        *services.Notifier
)

type Dependencies struct {
	DB              *gorm.DB
	Redis           *redis.Client
	BookingService  *services.BookingService
	ApprovalService *services.ApprovalService
	QuotaGuard      *services.QuotaGuard
	RefreshStore    *services.RefreshTokenStore
	StorageService  *services.StorageService
	Notifier        *services.Notifier
}

// InitControllers gán dependencies cho toàn bộ controllers
func InitControllers(deps Dependencies) {
	db = deps.DB
	redisCli = deps.Redis
	bookingService = deps.BookingService
	approvalService = deps.ApprovalService
	quotaGuard = deps.QuotaGuard
	refreshStore = deps.RefreshStore
	storageService = deps.StorageService
	notifier = deps.Notifier
}
