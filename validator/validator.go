package validator

import (
	"regexp"
	"time"

	"humana/constants"
	"humana/errors"
	"humana/models"
)

// ValidateUser validate thông tin tài khoản tạo kèm nhân viên
func ValidateUser(user *models.User) error {
	if user.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên không được để trống", nil)
	}

	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeValidation, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.Role != constants.RoleAdmin && user.Role != constants.RoleEmployee {
		return errors.NewAppError(errors.ErrCodeValidation, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateEmployee validate thông tin nhân viên
func ValidateEmployee(employee *models.Employee) error {
	if employee.EmployeeCode == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mã nhân viên không được để trống", nil)
	}

	if employee.DepartmentID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Phòng ban không được để trống", nil)
	}

	if employee.BasicSalary < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Lương cơ bản không được âm", nil)
	}

	if employee.DateOfBirth != "" {
		if _, err := time.Parse(constants.DateLayout, employee.DateOfBirth); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày sinh không hợp lệ", err)
		}
	}

	return nil
}

// ValidateEmployeeStatus kiểm tra trạng thái nhân viên hợp lệ
func ValidateEmployeeStatus(status string) error {
	if status != constants.EmployeeStatusActive && status != constants.EmployeeStatusInactive {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái nhân viên không hợp lệ", nil)
	}
	return nil
}

// ValidateLeave validate đơn xin nghỉ
func ValidateLeave(leave *models.Leave) error {
	if leave.LeaveType == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Loại nghỉ phép không được để trống", nil)
	}

	startDate, err := time.Parse(constants.DateLayout, leave.StartDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày bắt đầu không hợp lệ", err)
	}

	endDate, err := time.Parse(constants.DateLayout, leave.EndDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày kết thúc không hợp lệ", err)
	}

	if endDate.Before(startDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	if leave.Reason == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Lý do nghỉ không được để trống", nil)
	}

	return nil
}

// ValidateLeaveDecision kiểm tra trạng thái quyết định hợp lệ
func ValidateLeaveDecision(status string) error {
	if status != constants.LeaveStatusApproved && status != constants.LeaveStatusRejected {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái quyết định không hợp lệ", nil)
	}
	return nil
}

// ValidateAttendanceStatus kiểm tra trạng thái điểm danh hợp lệ, nil là xóa dấu
func ValidateAttendanceStatus(status *string) error {
	if status == nil {
		return nil
	}
	switch *status {
	case constants.AttendanceStatusPresent,
		constants.AttendanceStatusAbsent,
		constants.AttendanceStatusSick,
		constants.AttendanceStatusLeave:
		return nil
	}
	return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái điểm danh không hợp lệ", nil)
}

// ValidateSalary validate bản ghi chi lương trước khi ghi sổ
func ValidateSalary(salary *models.Salary) error {
	if salary.EmployeeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID nhân viên không được để trống", nil)
	}

	if salary.BasicSalary < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Lương cơ bản không được âm", nil)
	}

	if salary.Allowances < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Phụ cấp không được âm", nil)
	}

	if salary.Deductions < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Khấu trừ không được âm", nil)
	}

	if salary.PayDate.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày chi lương không được để trống", nil)
	}

	return nil
}

// ValidateDocumentLabel kiểm tra tên tài liệu
func ValidateDocumentLabel(label string) error {
	if label == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên tài liệu không được để trống", nil)
	}
	return nil
}

// ValidateDepartment validate phòng ban
func ValidateDepartment(department *models.Department) error {
	if department.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phòng ban không được để trống", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
