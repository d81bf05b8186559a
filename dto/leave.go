package dto

import "time"

// CreateLeaveRequest định nghĩa request nộp đơn xin nghỉ.
// Status do caller gửi lên bị bỏ qua: đơn mới luôn là pending.
type CreateLeaveRequest struct {
	EmployeeID uint   `json:"employeeId"`
	LeaveType  string `json:"leaveType" binding:"required"`
	StartDate  string `json:"startDate" binding:"required"`
	EndDate    string `json:"endDate" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

// LeaveDecisionRequest định nghĩa request quyết định đơn xin nghỉ
type LeaveDecisionRequest struct {
	Status string `json:"status" binding:"required"`
}

// LeaveResponse định nghĩa response cho đơn xin nghỉ
type LeaveResponse struct {
	ID             uint      `json:"id"`
	EmployeeID     uint      `json:"employeeId"`
	EmployeeCode   string    `json:"employeeCode"`
	EmployeeName   string    `json:"employeeName"`
	DepartmentName string    `json:"departmentName"`
	LeaveType      string    `json:"leaveType"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	Reason         string    `json:"reason"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
