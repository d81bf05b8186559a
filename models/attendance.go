package models

import "time"

// Attendance là một dấu điểm danh cho một nhân viên trong một ngày.
// Unique index trên (employee_id, date_key) chặn trùng bản ghi khi hai
// request đánh dấu cùng lúc; Status nil nghĩa là chưa điểm danh.
type Attendance struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	EmployeeID uint      `gorm:"uniqueIndex:idx_attendance_employee_date;not null" json:"employeeId"`
	DateKey    string    `gorm:"uniqueIndex:idx_attendance_employee_date;not null" json:"date"`
	Status     *string   `json:"status"`

	Employee Employee `json:"employee" gorm:"foreignKey:EmployeeID;references:ID"`
}
