package controllers

import (
	"humana/dto"
	"humana/models"
	"humana/response"
	"humana/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DepartmentController struct {
	DB *gorm.DB
}

func NewDepartmentController(db *gorm.DB) DepartmentController {
	return DepartmentController{DB: db}
}

func (d DepartmentController) GetDepartments(c *gin.Context) {
	var departments []models.Department
	if err := d.DB.Order("name asc").Find(&departments).Error; err != nil {
		response.ServerError(c)
		return
	}

	departmentResponses := make([]dto.DepartmentResponse, 0, len(departments))
	for _, dep := range departments {
		departmentResponses = append(departmentResponses, dto.DepartmentResponse{
			ID:          dep.ID,
			Name:        dep.Name,
			Description: dep.Description,
			CreatedAt:   dep.CreatedAt,
			UpdatedAt:   dep.UpdatedAt,
		})
	}

	response.SuccessWithTotal(c, departmentResponses, len(departmentResponses))
}

func (d DepartmentController) GetDepartmentDetail(c *gin.Context) {
	var department models.Department
	id := c.Param("id")

	if err := d.DB.First(&department, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, department)
}

func (d DepartmentController) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	department := models.Department{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := validator.ValidateDepartment(&department); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var existing models.Department
	if err := d.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		response.Conflict(c, "Phòng ban đã tồn tại")
		return
	}

	if err := d.DB.Create(&department).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, department)
}

func (d DepartmentController) UpdateDepartment(c *gin.Context) {
	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var department models.Department
	id := c.Param("id")
	if err := d.DB.First(&department, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Name != "" {
		department.Name = req.Name
	}
	if req.Description != "" {
		department.Description = req.Description
	}

	if err := d.DB.Save(&department).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, department)
}

// DeleteDepartment xóa phòng ban, không cascade: nhân viên còn tham chiếu
// phòng ban đã xóa được hiển thị với tên phòng ban rỗng.
func (d DepartmentController) DeleteDepartment(c *gin.Context) {
	var department models.Department
	id := c.Param("id")
	if err := d.DB.First(&department, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := d.DB.Delete(&department).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"deleted": department.ID})
}
