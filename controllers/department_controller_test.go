package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"humana/dto"
	"humana/models"
)

func TestCreateDepartmentTrungTenTraVeConflict(t *testing.T) {
	db := setupTestDB(t)

	controller := NewDepartmentController(db)
	router := newTestRouter()
	router.POST("/departments", controller.CreateDepartment)

	w := performJSON(t, router, http.MethodPost, "/departments", dto.CreateDepartmentRequest{
		Name:        "Ventas",
		Description: "Phòng kinh doanh",
	})
	requireStatus(t, w, http.StatusOK)

	w = performJSON(t, router, http.MethodPost, "/departments", dto.CreateDepartmentRequest{
		Name: "Ventas",
	})
	requireStatus(t, w, http.StatusConflict)

	var count int64
	db.Model(&models.Department{}).Count(&count)
	if count != 1 {
		t.Errorf("Số phòng ban = %d, muốn 1", count)
	}
}

func TestUpdateDepartmentGiuTruongKhongGui(t *testing.T) {
	db := setupTestDB(t)
	department := seedDepartment(t, db, "Ventas")
	if err := db.Model(&department).Update("description", "Phòng kinh doanh").Error; err != nil {
		t.Fatalf("Không cập nhật được mô tả: %v", err)
	}

	controller := NewDepartmentController(db)
	router := newTestRouter()
	router.PUT("/departments/:id", controller.UpdateDepartment)

	w := performJSON(t, router, http.MethodPut, fmt.Sprintf("/departments/%d", department.ID),
		dto.UpdateDepartmentRequest{Name: "Comercial"})
	requireStatus(t, w, http.StatusOK)

	var stored models.Department
	if err := db.First(&stored, department.ID).Error; err != nil {
		t.Fatalf("Không đọc lại được phòng ban: %v", err)
	}
	if stored.Name != "Comercial" {
		t.Errorf("Name = %q, muốn Comercial", stored.Name)
	}
	if stored.Description != "Phòng kinh doanh" {
		t.Errorf("Description = %q, trường không gửi phải giữ nguyên", stored.Description)
	}
}

func TestDeleteDepartmentKhongXoaNhanVien(t *testing.T) {
	db := setupTestDB(t)
	department := seedDepartment(t, db, "Ventas")
	employee := seedEmployee(t, db, "EMP001", department.ID)

	controller := NewDepartmentController(db)
	router := newTestRouter()
	router.DELETE("/departments/:id", controller.DeleteDepartment)

	w := performJSON(t, router, http.MethodDelete, fmt.Sprintf("/departments/%d", department.ID), nil)
	requireStatus(t, w, http.StatusOK)

	// Nhân viên vẫn còn, chỉ mất phòng ban
	var stored models.Employee
	if err := db.First(&stored, employee.ID).Error; err != nil {
		t.Fatalf("Nhân viên bị xóa theo phòng ban: %v", err)
	}

	w = performJSON(t, router, http.MethodDelete, fmt.Sprintf("/departments/%d", department.ID), nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestGetDepartmentsSapXepTheoTen(t *testing.T) {
	db := setupTestDB(t)
	seedDepartment(t, db, "Ventas")
	seedDepartment(t, db, "Finanzas")
	seedDepartment(t, db, "Operaciones")

	controller := NewDepartmentController(db)
	router := newTestRouter()
	router.GET("/departments", controller.GetDepartments)

	w := performJSON(t, router, http.MethodGet, "/departments", nil)
	requireStatus(t, w, http.StatusOK)

	var departments []dto.DepartmentResponse
	decodeData(t, w, &departments)
	if len(departments) != 3 {
		t.Fatalf("Số phòng ban = %d, muốn 3", len(departments))
	}
	want := []string{"Finanzas", "Operaciones", "Ventas"}
	for i, name := range want {
		if departments[i].Name != name {
			t.Errorf("departments[%d].Name = %q, muốn %q", i, departments[i].Name, name)
		}
	}
}
