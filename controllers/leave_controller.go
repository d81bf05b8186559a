package controllers

import (
	"encoding/json"
	"log"
	"strings"

	"humana/constants"
	"humana/dto"
	"humana/middleware"
	"humana/models"
	"humana/response"
	"humana/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

type LeaveController struct {
	DB     *gorm.DB
	Melody *melody.Melody
}

func NewLeaveController(db *gorm.DB, m *melody.Melody) LeaveController {
	return LeaveController{
		DB:     db,
		Melody: m,
	}
}

func leaveToResponse(leave models.Leave) dto.LeaveResponse {
	return dto.LeaveResponse{
		ID:             leave.ID,
		EmployeeID:     leave.EmployeeID,
		EmployeeCode:   leave.Employee.EmployeeCode,
		EmployeeName:   leave.Employee.User.Name,
		DepartmentName: leave.Employee.Department.Name,
		LeaveType:      leave.LeaveType,
		StartDate:      leave.StartDate,
		EndDate:        leave.EndDate,
		Reason:         leave.Reason,
		Status:         leave.Status,
		CreatedAt:      leave.CreatedAt,
		UpdatedAt:      leave.UpdatedAt,
	}
}

// CreateLeave nộp đơn xin nghỉ. Đơn mới luôn ở trạng thái pending,
// caller có gửi status cũng bị bỏ qua.
func (l LeaveController) CreateLeave(c *gin.Context) {
	viewer, ok := middleware.GetViewer(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var employee models.Employee
	if viewer.AllScope() && req.EmployeeID != 0 {
		// Admin được nộp hộ cho một nhân viên bất kỳ
		if err := l.DB.Preload("User").Preload("Department").First(&employee, req.EmployeeID).Error; err != nil {
			response.NotFound(c)
			return
		}
	} else {
		if err := l.DB.Preload("User").Preload("Department").
			Where("user_id = ?", viewer.UserID).First(&employee).Error; err != nil {
			response.NotFound(c)
			return
		}
	}

	leave := models.Leave{
		EmployeeID: employee.ID,
		LeaveType:  req.LeaveType,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
		Status:     constants.LeaveStatusPending,
	}

	if err := validator.ValidateLeave(&leave); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := l.DB.Create(&leave).Error; err != nil {
		response.ServerError(c)
		return
	}

	leave.Employee = employee
	response.Success(c, leaveToResponse(leave))
}

// DecideLeave áp quyết định approved/rejected cho một đơn đang pending.
// Đơn đã chốt là trạng thái cuối: quyết định lần hai trả về conflict.
func (l LeaveController) DecideLeave(c *gin.Context) {
	var req dto.LeaveDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if err := validator.ValidateLeaveDecision(status); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var leave models.Leave
	if err := l.DB.Preload("Employee").Preload("Employee.User").Preload("Employee.Department").
		First(&leave, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	if leave.Status != constants.LeaveStatusPending {
		response.Conflict(c, "Đơn xin nghỉ đã được quyết định")
		return
	}

	leave.Status = status
	if err := l.DB.Save(&leave).Error; err != nil {
		response.ServerError(c)
		return
	}

	l.broadcastDecision(leave)

	response.Success(c, leaveToResponse(leave))
}

// broadcastDecision đẩy thông báo quyết định qua websocket cho dashboard
func (l LeaveController) broadcastDecision(leave models.Leave) {
	if l.Melody == nil {
		return
	}

	message, err := json.Marshal(gin.H{
		"type":         "leave_decision",
		"leaveId":      leave.ID,
		"employeeCode": leave.Employee.EmployeeCode,
		"status":       leave.Status,
	})
	if err != nil {
		return
	}

	if err := l.Melody.Broadcast(message); err != nil {
		log.Printf("Lỗi khi broadcast quyết định nghỉ phép: %v", err)
	}
}

// GetLeaves liệt kê đơn xin nghỉ theo scope của viewer: nhân viên chỉ thấy
// đơn của mình, admin thấy toàn bộ kèm phòng ban và tên người nộp.
func (l LeaveController) GetLeaves(c *gin.Context) {
	viewer, ok := middleware.GetViewer(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	query := l.DB.Preload("Employee").Preload("Employee.User").Preload("Employee.Department").
		Order("created_at desc")

	if !viewer.AllScope() {
		var employee models.Employee
		if err := l.DB.Where("user_id = ?", viewer.UserID).First(&employee).Error; err != nil {
			response.NotFound(c)
			return
		}
		query = query.Where("employee_id = ?", employee.ID)
	}

	var leaves []models.Leave
	if err := query.Find(&leaves).Error; err != nil {
		response.ServerError(c)
		return
	}

	leaveResponses := make([]dto.LeaveResponse, 0, len(leaves))
	for _, leave := range leaves {
		leaveResponses = append(leaveResponses, leaveToResponse(leave))
	}

	response.SuccessWithTotal(c, leaveResponses, len(leaveResponses))
}

func (l LeaveController) GetLeaveDetail(c *gin.Context) {
	viewer, ok := middleware.GetViewer(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var leave models.Leave
	if err := l.DB.Preload("Employee").Preload("Employee.User").Preload("Employee.Department").
		First(&leave, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !viewer.CanView(leave.Employee.UserID) {
		response.Forbidden(c)
		return
	}

	response.Success(c, leaveToResponse(leave))
}
