package models

import "time"

type Leave struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	EmployeeID uint      `gorm:"index;not null" json:"employeeId"`
	LeaveType  string    `gorm:"not null" json:"leaveType"`
	StartDate  string    `gorm:"not null" json:"startDate"` // Ngày bắt đầu nghỉ
	EndDate    string    `gorm:"not null" json:"endDate"`   // Ngày kết thúc nghỉ
	Reason     string    `json:"reason"`
	Status     string    `gorm:"default:pending" json:"status"`

	Employee Employee `json:"employee" gorm:"foreignKey:EmployeeID;references:ID"`
}
