package models

import "time"

// EmployeeDocument là một mục trong danh mục hồ sơ của nhân viên.
// Lưu thành bảng con thay vì mảng nhúng để append/remove là thao tác nguyên tử.
type EmployeeDocument struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EmployeeID   uint      `gorm:"index;not null" json:"employeeId"`
	Label        string    `gorm:"not null" json:"label"`
	Category     string    `gorm:"default:general" json:"category"`
	FileURL      string    `gorm:"not null" json:"fileUrl"`
	OriginalName string    `json:"originalName"`
	PublicID     string    `gorm:"not null" json:"-"`
	UploadedAt   time.Time `gorm:"autoCreateTime" json:"uploadedAt"`
}
