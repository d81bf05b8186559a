package models

import "time"

type Employee struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	UserID       uint      `gorm:"uniqueIndex;not null" json:"userId"`
	EmployeeCode string    `gorm:"uniqueIndex;not null" json:"employeeCode"` // Mã nhân viên, không đổi sau khi tạo
	DepartmentID uint      `gorm:"index" json:"departmentId"`
	Designation  string    `json:"designation"`
	DateOfBirth  string    `json:"dateOfBirth"`
	Gender       string    `json:"gender"`
	MaritalStatus string   `json:"maritalStatus"`
	BasicSalary  int64     `gorm:"not null" json:"basicSalary"`
	Status       string    `gorm:"default:active" json:"status"`

	// Expediente hiện hành (hồ sơ tổng), bản ghi chi tiết nằm trong Documents
	ExpedienteFile         string     `json:"expedienteFile"`
	ExpedientePublicID     string     `json:"-"`
	ExpedienteOriginalName string     `json:"expedienteOriginalName"`
	ExpedienteUploadedAt   *time.Time `json:"expedienteUploadedAt"`

	User       User               `json:"user" gorm:"foreignKey:UserID;references:ID"`
	Department Department         `json:"department" gorm:"foreignKey:DepartmentID;references:ID"`
	Documents  []EmployeeDocument `json:"documents" gorm:"foreignKey:EmployeeID"`
}
