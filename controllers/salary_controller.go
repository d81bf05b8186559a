package controllers

import (
	"sort"
	"strconv"
	"time"

	"humana/constants"
	"humana/dto"
	"humana/middleware"
	"humana/models"
	"humana/response"
	"humana/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SalaryController struct {
	DB *gorm.DB
}

func NewSalaryController(db *gorm.DB) SalaryController {
	return SalaryController{DB: db}
}

func salaryToResponse(salary models.Salary) dto.SalaryResponse {
	return dto.SalaryResponse{
		ID:           salary.ID,
		EmployeeID:   salary.EmployeeID,
		EmployeeCode: salary.Employee.EmployeeCode,
		BasicSalary:  salary.BasicSalary,
		Allowances:   salary.Allowances,
		Deductions:   salary.Deductions,
		NetSalary:    salary.NetSalary,
		PayDate:      salary.PayDate,
		CreatedAt:    salary.CreatedAt,
	}
}

// AddSalary ghi nhận một lần chi lương. Sổ lương chỉ ghi thêm: lương net
// luôn được tính lại từ các thành phần, không nhận từ client.
func (s SalaryController) AddSalary(c *gin.Context) {
	var req dto.AddSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payDate, err := time.Parse(constants.DateLayout, req.PayDate)
	if err != nil {
		response.BadRequest(c, "Định dạng payDate không hợp lệ")
		return
	}

	var employee models.Employee
	if err := s.DB.Preload("User").First(&employee, req.EmployeeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	salary := models.Salary{
		EmployeeID:  req.EmployeeID,
		BasicSalary: req.BasicSalary,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
		NetSalary:   req.BasicSalary + req.Allowances - req.Deductions,
		PayDate:     payDate,
	}

	if err := validator.ValidateSalary(&salary); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := s.DB.Create(&salary).Error; err != nil {
		response.ServerError(c)
		return
	}

	salary.Employee = employee
	response.Success(c, salaryToResponse(salary))
}

// GetSalaryHistory trả về lịch sử chi lương theo phạm vi viewer: admin xem
// được của mọi nhân viên, nhân viên thường chỉ xem của chính mình.
func (s SalaryController) GetSalaryHistory(c *gin.Context) {
	viewer, ok := middleware.GetViewer(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	query := s.DB.Preload("Employee").Preload("Employee.User").Order("pay_date desc")
	if !viewer.AllScope() {
		var employee models.Employee
		if err := s.DB.Where("user_id = ?", viewer.UserID).First(&employee).Error; err != nil {
			response.NotFound(c)
			return
		}
		query = query.Where("employee_id = ?", employee.ID)
	} else if employeeID := c.Query("employeeId"); employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}

	var salaries []models.Salary
	if err := query.Find(&salaries).Error; err != nil {
		response.ServerError(c)
		return
	}

	responses := make([]dto.SalaryResponse, 0, len(salaries))
	for _, salary := range salaries {
		responses = append(responses, salaryToResponse(salary))
	}

	response.SuccessWithTotal(c, responses, len(responses))
}

// GetPayrollSummary tổng hợp sổ lương cho admin: lọc theo tháng và phòng
// ban, trả về từng dòng đã gắn tên nhân viên kèm tổng theo cột tính trên
// đúng tập bản ghi đã lọc.
func (s SalaryController) GetPayrollSummary(c *gin.Context) {
	month := c.Query("month")
	department := c.Query("department")

	// Bộ lọc phòng ban nhận id, danh sách departments trả kèm để client chọn
	var departmentID uint
	if department != "" && department != "all" {
		parsed, err := strconv.Atoi(department)
		if err != nil || parsed <= 0 {
			response.BadRequest(c, "Định dạng department không hợp lệ")
			return
		}
		departmentID = uint(parsed)
	}

	query := s.DB.Preload("Employee").Preload("Employee.User").Preload("Employee.Department")

	if month != "" {
		firstOfMonth, err := time.Parse("2006-01", month)
		if err != nil {
			response.BadRequest(c, "Định dạng month không hợp lệ")
			return
		}
		firstOfNextMonth := firstOfMonth.AddDate(0, 1, 0)
		query = query.Where("pay_date >= ? AND pay_date < ?", firstOfMonth, firstOfNextMonth)
	}

	var salaries []models.Salary
	if err := query.Find(&salaries).Error; err != nil {
		response.ServerError(c)
		return
	}

	records := make([]dto.PayrollRecord, 0, len(salaries))
	var totals dto.PayrollTotals
	for _, salary := range salaries {
		if departmentID != 0 && salary.Employee.DepartmentID != departmentID {
			continue
		}

		records = append(records, dto.PayrollRecord{
			ID:             salary.ID,
			BasicSalary:    salary.BasicSalary,
			Allowances:     salary.Allowances,
			Deductions:     salary.Deductions,
			NetSalary:      salary.NetSalary,
			PayDate:        salary.PayDate,
			EmployeeCode:   salary.Employee.EmployeeCode,
			EmployeeName:   salary.Employee.User.Name,
			DepartmentID:   salary.Employee.DepartmentID,
			DepartmentName: salary.Employee.Department.Name,
		})

		totals.BasicSalary += salary.BasicSalary
		totals.Allowances += salary.Allowances
		totals.Deductions += salary.Deductions
		totals.NetSalary += salary.NetSalary
	}

	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].PayDate.Equal(records[j].PayDate) {
			return records[i].PayDate.After(records[j].PayDate)
		}
		return records[i].ID > records[j].ID
	})

	var departments []models.Department
	if err := s.DB.Order("name asc").Find(&departments).Error; err != nil {
		response.ServerError(c)
		return
	}
	departmentResponses := make([]dto.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		departmentResponses = append(departmentResponses, dto.DepartmentResponse{
			ID:          dept.ID,
			Name:        dept.Name,
			Description: dept.Description,
			CreatedAt:   dept.CreatedAt,
			UpdatedAt:   dept.UpdatedAt,
		})
	}

	response.Success(c, dto.PayrollSummaryResponse{
		Records:     records,
		Totals:      totals,
		Filters:     dto.PayrollFilters{Month: month, Department: department},
		Departments: departmentResponses,
	})
}
