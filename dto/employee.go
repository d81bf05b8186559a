package dto

import "time"

// CreateEmployeeRequest định nghĩa request tạo nhân viên (multipart form,
// kèm file ảnh đại diện tùy chọn trong field "image")
type CreateEmployeeRequest struct {
	Name          string `form:"name" binding:"required"`
	Email         string `form:"email" binding:"required,email"`
	Password      string `form:"password" binding:"required"`
	Role          int    `form:"role"`
	EmployeeCode  string `form:"employeeCode" binding:"required"`
	DateOfBirth   string `form:"dateOfBirth"`
	Gender        string `form:"gender"`
	MaritalStatus string `form:"maritalStatus"`
	Designation   string `form:"designation"`
	DepartmentID  uint   `form:"departmentId" binding:"required"`
	BasicSalary   int64  `form:"basicSalary"`
}

// UpdateEmployeeRequest định nghĩa request cập nhật nhân viên.
// Mã nhân viên không nằm trong đây: bất biến sau khi tạo.
type UpdateEmployeeRequest struct {
	Name          string `json:"name"`
	MaritalStatus string `json:"maritalStatus"`
	Designation   string `json:"designation"`
	DepartmentID  uint   `json:"departmentId"`
	BasicSalary   *int64 `json:"basicSalary"`
}

// EmployeeStatusRequest định nghĩa request đổi trạng thái nhân viên
type EmployeeStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// EmployeeResponse định nghĩa response cho nhân viên
type EmployeeResponse struct {
	ID             uint               `json:"id"`
	EmployeeCode   string             `json:"employeeCode"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	ProfileImage   string             `json:"profileImage,omitempty"`
	DepartmentID   uint               `json:"departmentId"`
	DepartmentName string             `json:"departmentName"`
	Designation    string             `json:"designation"`
	DateOfBirth    string             `json:"dateOfBirth,omitempty"`
	Gender         string             `json:"gender,omitempty"`
	MaritalStatus  string             `json:"maritalStatus,omitempty"`
	BasicSalary    int64              `json:"basicSalary"`
	Status         string             `json:"status"`
	Expediente     *ExpedienteInfo    `json:"expediente,omitempty"`
	Documents      []DocumentResponse `json:"documents,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// ScoredEmployee là kết quả tìm kiếm gần đúng kèm điểm phù hợp
type ScoredEmployee struct {
	Employee EmployeeResponse `json:"employee"`
	Score    int              `json:"score"`
}
