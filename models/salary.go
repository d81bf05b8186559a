package models

import "time"

// Salary là một bản ghi chi lương, chỉ ghi thêm, không sửa không xóa.
type Salary struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	EmployeeID  uint      `gorm:"index;not null" json:"employeeId"`
	BasicSalary int64     `gorm:"not null" json:"basicSalary"`
	Allowances  int64     `json:"allowances"`
	Deductions  int64     `json:"deductions"`
	NetSalary   int64     `gorm:"not null" json:"netSalary"` // = BasicSalary + Allowances - Deductions
	PayDate     time.Time `gorm:"index;not null" json:"payDate"`

	Employee Employee `json:"employee" gorm:"foreignKey:EmployeeID;references:ID"`
}
