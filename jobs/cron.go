package jobs

import (
	"time"

	"github.com/robfig/cron/v3"

	"vista/utils"
)

// BookingCompleter định nghĩa interface cho việc tự hoàn tất booking quá hạn
type BookingCompleter interface {
	CompletePastCheckouts(now time.Time) (int, error)
}

var bookingCompleter BookingCompleter

// SetBookingCompleter thiết lập implementation cho BookingCompleter
func SetBookingCompleter(completer BookingCompleter) {
	bookingCompleter = completer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Chạy lúc 0h mỗi ngày: booking confirmed đã qua ngày trả phòng
	// chuyển sang completed và trả phòng/homestay về available
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		utils.LogInfo("Đang chạy tự hoàn tất booking quá hạn lúc: %v", now)
		if bookingCompleter == nil {
			utils.LogError("BookingCompleter chưa được thiết lập")
			return
		}
		completed, err := bookingCompleter.CompletePastCheckouts(now)
		if err != nil {
			utils.LogError("Lỗi khi tự hoàn tất booking: %v", err)
			return
		}
		utils.LogInfo("Đã hoàn tất %d booking quá hạn", completed)
	})
	if err != nil {
		return err
	}

	c.Start()
	utils.LogInfo("Cron jobs initialized successfully")
	return nil
}
