package constants

// User role
const (
	RoleEmployee = 0
	RoleAdmin    = 1
)

// Employee status
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

// Leave status
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// Attendance status
const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusSick    = "sick"
	AttendanceStatusLeave   = "leave"
)

// Document category
const (
	DocumentCategoryGeneral    = "general"
	DocumentCategoryExpediente = "expediente"
)

// Định dạng ngày dùng chung cho toàn hệ thống
const DateLayout = "2006-01-02"
