package validator

import (
	"testing"
	"time"

	"humana/constants"
	"humana/models"
)

func TestValidateLeave(t *testing.T) {
	tests := []struct {
		name    string
		leave   models.Leave
		wantErr bool
	}{
		{
			name: "đơn hợp lệ",
			leave: models.Leave{
				LeaveType: "vacaciones",
				StartDate: "2026-09-07",
				EndDate:   "2026-09-11",
				Reason:    "Nghỉ phép năm",
			},
			wantErr: false,
		},
		{
			name: "một ngày duy nhất",
			leave: models.Leave{
				LeaveType: "enfermedad",
				StartDate: "2026-09-07",
				EndDate:   "2026-09-07",
				Reason:    "Nghỉ ốm",
			},
			wantErr: false,
		},
		{
			name: "ngày kết thúc trước ngày bắt đầu",
			leave: models.Leave{
				LeaveType: "vacaciones",
				StartDate: "2026-09-11",
				EndDate:   "2026-09-07",
				Reason:    "Nghỉ phép năm",
			},
			wantErr: true,
		},
		{
			name: "ngày sai định dạng",
			leave: models.Leave{
				LeaveType: "vacaciones",
				StartDate: "07/09/2026",
				EndDate:   "2026-09-11",
				Reason:    "Nghỉ phép năm",
			},
			wantErr: true,
		},
		{
			name: "thiếu lý do",
			leave: models.Leave{
				LeaveType: "vacaciones",
				StartDate: "2026-09-07",
				EndDate:   "2026-09-11",
			},
			wantErr: true,
		},
		{
			name: "thiếu loại nghỉ",
			leave: models.Leave{
				StartDate: "2026-09-07",
				EndDate:   "2026-09-11",
				Reason:    "Nghỉ phép năm",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLeave(&tt.leave)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLeave() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLeaveDecision(t *testing.T) {
	if err := ValidateLeaveDecision(constants.LeaveStatusApproved); err != nil {
		t.Errorf("approved phải hợp lệ: %v", err)
	}
	if err := ValidateLeaveDecision(constants.LeaveStatusRejected); err != nil {
		t.Errorf("rejected phải hợp lệ: %v", err)
	}
	for _, status := range []string{constants.LeaveStatusPending, "cancelled", ""} {
		if err := ValidateLeaveDecision(status); err == nil {
			t.Errorf("%q phải bị từ chối", status)
		}
	}
}

func TestValidateAttendanceStatus(t *testing.T) {
	valid := []string{
		constants.AttendanceStatusPresent,
		constants.AttendanceStatusAbsent,
		constants.AttendanceStatusSick,
		constants.AttendanceStatusLeave,
	}
	for _, status := range valid {
		status := status
		if err := ValidateAttendanceStatus(&status); err != nil {
			t.Errorf("%q phải hợp lệ: %v", status, err)
		}
	}

	// nil là xóa dấu, luôn hợp lệ
	if err := ValidateAttendanceStatus(nil); err != nil {
		t.Errorf("nil phải hợp lệ: %v", err)
	}

	invalid := "vacation"
	if err := ValidateAttendanceStatus(&invalid); err == nil {
		t.Error("vacation phải bị từ chối")
	}
}

func TestValidateSalary(t *testing.T) {
	payDate := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	valid := models.Salary{EmployeeID: 1, BasicSalary: 10000, Allowances: 500, Deductions: 200, PayDate: payDate}
	if err := ValidateSalary(&valid); err != nil {
		t.Errorf("Bản ghi hợp lệ bị từ chối: %v", err)
	}

	zeroAmounts := models.Salary{EmployeeID: 1, PayDate: payDate}
	if err := ValidateSalary(&zeroAmounts); err != nil {
		t.Errorf("Số tiền bằng 0 phải hợp lệ: %v", err)
	}

	negative := models.Salary{EmployeeID: 1, BasicSalary: -1, PayDate: payDate}
	if err := ValidateSalary(&negative); err == nil {
		t.Error("Lương cơ bản âm phải bị từ chối")
	}

	negativeDeductions := models.Salary{EmployeeID: 1, Deductions: -1, PayDate: payDate}
	if err := ValidateSalary(&negativeDeductions); err == nil {
		t.Error("Khấu trừ âm phải bị từ chối")
	}

	noPayDate := models.Salary{EmployeeID: 1, BasicSalary: 10000}
	if err := ValidateSalary(&noPayDate); err == nil {
		t.Error("Thiếu ngày chi lương phải bị từ chối")
	}
}

func TestValidateUser(t *testing.T) {
	valid := models.User{Name: "Ana", Email: "ana@humana.test", Password: "secreto1", Role: constants.RoleEmployee}
	if err := ValidateUser(&valid); err != nil {
		t.Errorf("User hợp lệ bị từ chối: %v", err)
	}

	badEmail := valid
	badEmail.Email = "khong-phai-email"
	if err := ValidateUser(&badEmail); err == nil {
		t.Error("Email sai định dạng phải bị từ chối")
	}

	shortPassword := valid
	shortPassword.Password = "abc"
	if err := ValidateUser(&shortPassword); err == nil {
		t.Error("Mật khẩu ngắn phải bị từ chối")
	}
}

func TestValidateEmployee(t *testing.T) {
	valid := models.Employee{EmployeeCode: "EMP001", DepartmentID: 1, BasicSalary: 10000, DateOfBirth: "1990-05-20"}
	if err := ValidateEmployee(&valid); err != nil {
		t.Errorf("Nhân viên hợp lệ bị từ chối: %v", err)
	}

	noCode := valid
	noCode.EmployeeCode = ""
	if err := ValidateEmployee(&noCode); err == nil {
		t.Error("Thiếu mã nhân viên phải bị từ chối")
	}

	badBirth := valid
	badBirth.DateOfBirth = "20/05/1990"
	if err := ValidateEmployee(&badBirth); err == nil {
		t.Error("Ngày sinh sai định dạng phải bị từ chối")
	}
}

func TestValidateEmployeeStatus(t *testing.T) {
	if err := ValidateEmployeeStatus(constants.EmployeeStatusActive); err != nil {
		t.Errorf("active phải hợp lệ: %v", err)
	}
	if err := ValidateEmployeeStatus(constants.EmployeeStatusInactive); err != nil {
		t.Errorf("inactive phải hợp lệ: %v", err)
	}
	if err := ValidateEmployeeStatus("suspended"); err == nil {
		t.Error("suspended phải bị từ chối")
	}
}
