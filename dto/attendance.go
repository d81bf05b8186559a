package dto

// MarkAttendanceRequest định nghĩa request điểm danh.
// Status nil là xóa dấu, đưa nhân viên về trạng thái chưa điểm danh.
type MarkAttendanceRequest struct {
	Status *string `json:"status"`
}

// AttendanceRow là một dòng điểm danh kèm thông tin hiển thị.
// Status rỗng nghĩa là chưa điểm danh (UI hiển thị "pending").
type AttendanceRow struct {
	EmployeeID     uint   `json:"employeeId"`
	EmployeeCode   string `json:"employeeCode"`
	EmployeeName   string `json:"employeeName"`
	DepartmentName string `json:"departmentName"`
	Date           string `json:"date"`
	Status         string `json:"status"`
}
