package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"vista/config"
	"vista/controllers"
	"vista/jobs"
	"vista/routes"
	"vista/services"
	"vista/services/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	notifier := services.NewNotifier(m)
	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:       config.DB,
		Logger:   logger.NewDefaultLogger(logger.InfoLevel),
		Notifier: notifier,
	})

	controllers.InitControllers(controllers.Dependencies{
		DB:              config.DB,
		Redis:           config.RedisClient,
		BookingService:  bookingService,
		ApprovalService: services.NewApprovalService(config.DB, notifier),
		QuotaGuard:      services.NewQuotaGuard(config.DB),
		RefreshStore:    services.NewRefreshTokenStore(config.RedisClient),
		StorageService:  services.NewStorageService(config.Cloudinary),
		Notifier:        notifier,
	})

	jobs.SetBookingCompleter(bookingService)
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
