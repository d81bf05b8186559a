package dto

import "time"

// AddSalaryRequest định nghĩa request ghi nhận một lần chi lương
type AddSalaryRequest struct {
	EmployeeID  uint   `json:"employeeId" binding:"required"`
	BasicSalary int64  `json:"basicSalary"`
	Allowances  int64  `json:"allowances"`
	Deductions  int64  `json:"deductions"`
	PayDate     string `json:"payDate" binding:"required"`
}

// SalaryResponse định nghĩa response cho một bản ghi chi lương
type SalaryResponse struct {
	ID           uint      `json:"id"`
	EmployeeID   uint      `json:"employeeId"`
	EmployeeCode string    `json:"employeeCode"`
	BasicSalary  int64     `json:"basicSalary"`
	Allowances   int64     `json:"allowances"`
	Deductions   int64     `json:"deductions"`
	NetSalary    int64     `json:"netSalary"`
	PayDate      time.Time `json:"payDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PayrollRecord là một dòng trong bảng tổng hợp lương
type PayrollRecord struct {
	ID             uint      `json:"id"`
	BasicSalary    int64     `json:"basicSalary"`
	Allowances     int64     `json:"allowances"`
	Deductions     int64     `json:"deductions"`
	NetSalary      int64     `json:"netSalary"`
	PayDate        time.Time `json:"payDate"`
	EmployeeCode   string    `json:"employeeCode"`
	EmployeeName   string    `json:"employeeName"`
	DepartmentID   uint      `json:"departmentId"`
	DepartmentName string    `json:"departmentName"`
}

// PayrollTotals là tổng theo từng cột của các bản ghi khớp bộ lọc
type PayrollTotals struct {
	BasicSalary int64 `json:"basicSalary"`
	Allowances  int64 `json:"allowances"`
	Deductions  int64 `json:"deductions"`
	NetSalary   int64 `json:"netSalary"`
}

// PayrollFilters phản hồi lại bộ lọc đã áp dụng
type PayrollFilters struct {
	Month      string `json:"month"`
	Department string `json:"department"`
}

// PayrollSummaryResponse định nghĩa response tổng hợp lương
type PayrollSummaryResponse struct {
	Records     []PayrollRecord      `json:"records"`
	Totals      PayrollTotals        `json:"totals"`
	Filters     PayrollFilters       `json:"filters"`
	Departments []DepartmentResponse `json:"departments"`
}
