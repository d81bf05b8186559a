package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// AttendanceSeeder định nghĩa interface cho việc tạo trước bản ghi điểm danh
type AttendanceSeeder interface {
	SeedToday() error
}

var attendanceSeeder AttendanceSeeder

// SetAttendanceSeeder thiết lập implementation cho AttendanceSeeder
func SetAttendanceSeeder(seeder AttendanceSeeder) {
	attendanceSeeder = seeder
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy tạo trước điểm danh trong ngày lúc: %v", now)
		if attendanceSeeder == nil {
			log.Printf("Lỗi: AttendanceSeeder chưa được thiết lập")
			return
		}
		if err := attendanceSeeder.SeedToday(); err != nil {
			log.Printf("Lỗi khi tạo trước điểm danh: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
