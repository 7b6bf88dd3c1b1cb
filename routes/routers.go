package routes

import (
	"github.com/gin-gonic/gin"

	"vista/constants"
	"vista/controllers"
	middlewares "vista/middleware"
)

func SetupRoutes(router *gin.Engine) {
	admin := constants.AccountTypeAdmin
	merchant := constants.AccountTypeMerchant
	customer := constants.AccountTypeCustomer

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	// Auth
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/refresh", controllers.RefreshToken)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/verify-email", controllers.VerifyEmail)
	v1.POST("/verifyCode", controllers.VerifyCode)
	v1.POST("/resendCode", controllers.ResendVerificationCode)
	v1.POST("/forgetPassword", controllers.ForgetPassword)
	v1.POST("/newPassword", controllers.ResetPassword)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)

	// Merchant profiles
	v1.POST("/merchants", middlewares.AuthMiddleware(merchant), controllers.CreateMerchantProfile)
	v1.GET("/merchants/me", middlewares.AuthMiddleware(merchant), controllers.GetMyMerchantProfile)
	v1.PUT("/merchants/me", middlewares.AuthMiddleware(merchant), controllers.UpdateMerchantProfile)
	v1.GET("/merchants", middlewares.AuthMiddleware(admin), controllers.GetMerchants)
	v1.GET("/merchants/:id", middlewares.AuthMiddleware(admin), controllers.GetMerchantDetail)
	v1.PATCH("/merchants/:id/status", middlewares.AuthMiddleware(admin), controllers.ChangeMerchantStatus)
	v1.PATCH("/merchants/:id/quota", middlewares.AuthMiddleware(admin), controllers.UpdateMerchantQuota)

	// Properties
	v1.GET("/propertiesUser", controllers.GetAllPropertiesForUser)
	v1.GET("/properties", middlewares.AuthMiddleware(admin, merchant), controllers.GetAllProperties)
	v1.POST("/properties", middlewares.AuthMiddleware(admin, merchant), controllers.CreateProperty)
	v1.GET("/properties/:id", controllers.GetPropertyDetail)
	v1.PUT("/properties/:id", middlewares.AuthMiddleware(admin, merchant), controllers.UpdateProperty)
	v1.DELETE("/properties/:id", middlewares.AuthMiddleware(admin, merchant), controllers.DeleteProperty)
	v1.PATCH("/properties/:id/restore", middlewares.AuthMiddleware(admin, merchant), controllers.RestoreProperty)
	v1.PATCH("/properties/:id/approval-status", middlewares.AuthMiddleware(admin), controllers.ChangePropertyApprovalStatus)
	v1.PATCH("/properties/:id/verify", middlewares.AuthMiddleware(admin), controllers.VerifyProperty)
	v1.PATCH("/properties/:id/amenities", middlewares.AuthMiddleware(admin, merchant), controllers.UpdatePropertyAmenities)
	v1.POST("/properties/:id/images", middlewares.AuthMiddleware(admin, merchant), controllers.UploadPropertyImages)

	// Rooms
	v1.GET("/rooms", controllers.GetRooms)
	v1.POST("/rooms", middlewares.AuthMiddleware(admin, merchant), controllers.CreateRoom)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.GET("/rooms/:id/booked-dates", controllers.GetRoomBookedDates)
	v1.PUT("/rooms/:id", middlewares.AuthMiddleware(admin, merchant), controllers.UpdateRoom)
	v1.DELETE("/rooms/:id", middlewares.AuthMiddleware(admin, merchant), controllers.DeleteRoom)
	v1.PATCH("/rooms/:id/status", middlewares.AuthMiddleware(admin, merchant), controllers.ChangeRoomAvailabilityStatus)
	v1.PATCH("/rooms/:id/approval-status", middlewares.AuthMiddleware(admin), controllers.ChangeRoomApprovalStatus)
	v1.POST("/rooms/:id/images", middlewares.AuthMiddleware(admin, merchant), controllers.UploadRoomImages)

	// HomeStays
	v1.GET("/homestays", controllers.GetHomeStays)
	v1.POST("/homestays", middlewares.AuthMiddleware(admin, merchant), controllers.CreateHomeStay)
	v1.GET("/homestays/:id", controllers.GetHomeStayDetail)
	v1.PUT("/homestays/:id", middlewares.AuthMiddleware(admin, merchant), controllers.UpdateHomeStay)
	v1.DELETE("/homestays/:id", middlewares.AuthMiddleware(admin, merchant), controllers.DeleteHomeStay)
	v1.PATCH("/homestays/:id/status", middlewares.AuthMiddleware(admin, merchant), controllers.ChangeHomeStayAvailabilityStatus)
	v1.PATCH("/homestays/:id/approval-status", middlewares.AuthMiddleware(admin), controllers.ChangeHomeStayApprovalStatus)
	v1.PATCH("/homestays/:id/verify", middlewares.AuthMiddleware(admin), controllers.VerifyHomeStay)

	// Units
	v1.GET("/units", controllers.GetUnits)
	v1.POST("/units", middlewares.AuthMiddleware(admin, merchant), controllers.CreateUnit)
	v1.GET("/units/:id", controllers.GetUnitDetail)
	v1.PUT("/units/:id", middlewares.AuthMiddleware(admin, merchant), controllers.UpdateUnit)
	v1.DELETE("/units/:id", middlewares.AuthMiddleware(admin, merchant), controllers.DeleteUnit)
	v1.PATCH("/units/:id/status", middlewares.AuthMiddleware(admin, merchant), controllers.ChangeUnitAvailabilityStatus)
	v1.PATCH("/units/:id/approval-status", middlewares.AuthMiddleware(admin), controllers.ChangeUnitApprovalStatus)

	// Bookings
	v1.POST("/bookings", middlewares.AuthMiddleware(customer, admin), controllers.CreateBooking)
	v1.GET("/bookings", middlewares.AuthMiddleware(), controllers.GetBookings)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(), controllers.GetBookingDetail)
	v1.PATCH("/bookings/:id/status", middlewares.AuthMiddleware(), controllers.ChangeBookingStatus)
	v1.PATCH("/bookings/:id/payment-status", middlewares.AuthMiddleware(admin, merchant), controllers.UpdatePaymentStatus)
	v1.DELETE("/bookings/:id", middlewares.AuthMiddleware(), controllers.DeleteBooking)

	// Dịch vụ di chuyển
	v1.GET("/transports", controllers.GetTransports)
	v1.POST("/transports", middlewares.AuthMiddleware(merchant), controllers.CreateTransport)
	v1.PUT("/transports/:id", middlewares.AuthMiddleware(admin, merchant), controllers.UpdateTransport)
	v1.DELETE("/transports/:id", middlewares.AuthMiddleware(admin, merchant), controllers.DeleteTransport)
	v1.PATCH("/transports/:id/approval-status", middlewares.AuthMiddleware(admin), controllers.ChangeTransportApprovalStatus)

	// Dịch vụ nghệ sĩ
	v1.GET("/artists", controllers.GetArtists)
	v1.POST("/artists", middlewares.AuthMiddleware(merchant), controllers.CreateArtist)
	v1.PUT("/artists/:id", middlewares.AuthMiddleware(admin, merchant), controllers.UpdateArtist)
	v1.DELETE("/artists/:id", middlewares.AuthMiddleware(admin, merchant), controllers.DeleteArtist)
	v1.PATCH("/artists/:id/approval-status", middlewares.AuthMiddleware(admin), controllers.ChangeArtistApprovalStatus)
}
