package controllers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"humana/config"
	"humana/constants"
	"humana/dto"
	"humana/models"
	"humana/response"
	"humana/services"
	"humana/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type AttendanceController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewAttendanceController(db *gorm.DB, redisCli *redis.Client) AttendanceController {
	return AttendanceController{
		DB:    db,
		Redis: redisCli,
	}
}

func todayKey() string {
	return time.Now().Format(constants.DateLayout)
}

func attendanceCacheKey(dateKey string) string {
	return fmt.Sprintf("attendance:today:%s", dateKey)
}

func attendanceStatusString(status *string) string {
	if status == nil {
		return ""
	}
	return *status
}

// MarkAttendance tạo hoặc ghi đè dấu điểm danh hôm nay cho một nhân viên,
// tra theo mã nhân viên. Thao tác idempotent: unique index trên
// (employee_id, date_key) bảo đảm mỗi ngày chỉ có một bản ghi.
func (a AttendanceController) MarkAttendance(c *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateAttendanceStatus(req.Status); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var employee models.Employee
	if err := a.DB.Preload("User").Preload("Department").
		Where("employee_code = ?", c.Param("employeeCode")).First(&employee).Error; err != nil {
		response.NotFound(c)
		return
	}

	dateKey := todayKey()

	var record models.Attendance
	err := a.DB.Where("employee_id = ? AND date_key = ?", employee.ID, dateKey).First(&record).Error
	if err == nil {
		record.Status = req.Status
		if err := a.DB.Save(&record).Error; err != nil {
			response.ServerError(c)
			return
		}
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.Attendance{
			EmployeeID: employee.ID,
			DateKey:    dateKey,
			Status:     req.Status,
		}
		if err := a.DB.Create(&record).Error; err != nil {
			// Request song song đã tạo bản ghi trước, ghi đè lên bản đó
			if err := a.DB.Where("employee_id = ? AND date_key = ?", employee.ID, dateKey).First(&record).Error; err != nil {
				response.ServerError(c)
				return
			}
			record.Status = req.Status
			if err := a.DB.Save(&record).Error; err != nil {
				response.ServerError(c)
				return
			}
		}
	} else {
		response.ServerError(c)
		return
	}

	a.invalidateTodayCache(dateKey)

	response.Success(c, dto.AttendanceRow{
		EmployeeID:     employee.ID,
		EmployeeCode:   employee.EmployeeCode,
		EmployeeName:   employee.User.Name,
		DepartmentName: employee.Department.Name,
		Date:           dateKey,
		Status:         attendanceStatusString(record.Status),
	})
}

// GetTodayAttendance trả về dấu điểm danh hôm nay của mọi nhân viên đang
// hoạt động; nhân viên chưa có bản ghi vẫn xuất hiện với status rỗng.
func (a AttendanceController) GetTodayAttendance(c *gin.Context) {
	dateKey := todayKey()
	cacheKey := attendanceCacheKey(dateKey)

	var rows []dto.AttendanceRow
	if a.Redis != nil {
		if err := services.GetFromRedis(config.Ctx, a.Redis, cacheKey, &rows); err != nil {
			log.Printf("Không đọc được cache điểm danh: %v", err)
		}
	}

	if len(rows) == 0 {
		var employees []models.Employee
		if err := a.DB.Preload("User").Preload("Department").
			Where("status = ?", constants.EmployeeStatusActive).Find(&employees).Error; err != nil {
			response.ServerError(c)
			return
		}

		var records []models.Attendance
		if err := a.DB.Where("date_key = ?", dateKey).Find(&records).Error; err != nil {
			response.ServerError(c)
			return
		}

		statusByEmployee := make(map[uint]*string, len(records))
		for _, record := range records {
			statusByEmployee[record.EmployeeID] = record.Status
		}

		rows = make([]dto.AttendanceRow, 0, len(employees))
		for _, employee := range employees {
			rows = append(rows, dto.AttendanceRow{
				EmployeeID:     employee.ID,
				EmployeeCode:   employee.EmployeeCode,
				EmployeeName:   employee.User.Name,
				DepartmentName: employee.Department.Name,
				Date:           dateKey,
				Status:         attendanceStatusString(statusByEmployee[employee.ID]),
			})
		}

		if a.Redis != nil {
			if err := services.SetToRedis(config.Ctx, a.Redis, cacheKey, rows, 5*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu điểm danh vào Redis: %v", err)
			}
		}
	}

	response.SuccessWithTotal(c, rows, len(rows))
}

// GetAttendanceReport trả về lịch sử điểm danh gộp theo ngày. skip/limit
// phân trang trên các ngày distinct, không phải trên từng bản ghi;
// kết quả rỗng nghĩa là đã hết trang.
func (a AttendanceController) GetAttendanceReport(c *gin.Context) {
	skip := 0
	limit := 30
	if skipStr := c.Query("skip"); skipStr != "" {
		if parsedSkip, err := strconv.Atoi(skipStr); err == nil && parsedSkip >= 0 {
			skip = parsedSkip
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	dateQuery := a.DB.Model(&models.Attendance{}).Distinct("date_key").Order("date_key desc")
	if date := c.Query("date"); date != "" {
		if _, err := time.Parse(constants.DateLayout, date); err != nil {
			response.BadRequest(c, "Định dạng date không hợp lệ")
			return
		}
		dateQuery = dateQuery.Where("date_key = ?", date)
	}

	var dateKeys []string
	if err := dateQuery.Offset(skip).Limit(limit).Pluck("date_key", &dateKeys).Error; err != nil {
		response.ServerError(c)
		return
	}

	groups := make(map[string][]dto.AttendanceRow, len(dateKeys))
	if len(dateKeys) > 0 {
		var records []models.Attendance
		if err := a.DB.Preload("Employee").Preload("Employee.User").Preload("Employee.Department").
			Where("date_key IN ?", dateKeys).Order("date_key desc").Find(&records).Error; err != nil {
			response.ServerError(c)
			return
		}

		for _, record := range records {
			groups[record.DateKey] = append(groups[record.DateKey], dto.AttendanceRow{
				EmployeeID:     record.EmployeeID,
				EmployeeCode:   record.Employee.EmployeeCode,
				EmployeeName:   record.Employee.User.Name,
				DepartmentName: record.Employee.Department.Name,
				Date:           record.DateKey,
				Status:         attendanceStatusString(record.Status),
			})
		}
	}

	response.SuccessWithTotal(c, groups, len(groups))
}

// SeedToday tạo trước bản ghi chưa điểm danh cho mọi nhân viên đang hoạt
// động, chạy bởi cron lúc 0h mỗi ngày.
func (a AttendanceController) SeedToday() error {
	dateKey := todayKey()

	var employees []models.Employee
	if err := a.DB.Where("status = ?", constants.EmployeeStatusActive).Find(&employees).Error; err != nil {
		return err
	}

	for _, employee := range employees {
		var existing models.Attendance
		err := a.DB.Where("employee_id = ? AND date_key = ?", employee.ID, dateKey).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		record := models.Attendance{
			EmployeeID: employee.ID,
			DateKey:    dateKey,
		}
		if err := a.DB.Create(&record).Error; err != nil {
			log.Printf("Không tạo được bản ghi điểm danh cho nhân viên %d: %v", employee.ID, err)
		}
	}

	a.invalidateTodayCache(dateKey)
	return nil
}

func (a AttendanceController) invalidateTodayCache(dateKey string) {
	if a.Redis == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, a.Redis, attendanceCacheKey(dateKey)); err != nil {
		log.Printf("Lỗi khi xóa cache điểm danh: %v", err)
	}
}
