package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"humana/constants"
	"humana/middleware"
	"humana/models"
	"humana/types"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Không mở được database test: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Employee{},
		&models.EmployeeDocument{},
		&models.Leave{},
		&models.Attendance{},
		&models.Salary{},
	); err != nil {
		t.Fatalf("Không migrate được schema test: %v", err)
	}

	return db
}

// viewerMiddleware thay AuthMiddleware trong test: gắn thẳng viewer vào context
func viewerMiddleware(viewer types.Viewer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ViewerKey, viewer)
		c.Next()
	}
}

func adminViewer(userID uint) types.Viewer {
	return types.Viewer{UserID: userID, Role: constants.RoleAdmin}
}

func employeeViewer(userID uint) types.Viewer {
	return types.Viewer{UserID: userID, Role: constants.RoleEmployee}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// seedEmployee tạo user + employee cùng phòng ban cho các test cần dữ liệu nền
func seedEmployee(t *testing.T, db *gorm.DB, code string, departmentID uint) models.Employee {
	t.Helper()

	user := models.User{
		Name:  "Nhân viên " + code,
		Email: code + "@humana.test",
		Role:  constants.RoleEmployee,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Không tạo được user test: %v", err)
	}

	employee := models.Employee{
		UserID:       user.ID,
		EmployeeCode: code,
		DepartmentID: departmentID,
		Designation:  "Analista",
		BasicSalary:  10000,
		Status:       constants.EmployeeStatusActive,
	}
	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("Không tạo được employee test: %v", err)
	}

	employee.User = user
	return employee
}

func seedDepartment(t *testing.T, db *gorm.DB, name string) models.Department {
	t.Helper()

	department := models.Department{Name: name}
	if err := db.Create(&department).Error; err != nil {
		t.Fatalf("Không tạo được department test: %v", err)
	}
	return department
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Không marshal được body test: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// envelope là cấu trúc response chung {code, mess, data}
type envelope struct {
	Code int             `json:"code"`
	Mess string          `json:"mess"`
	Data json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("Không decode được response %q: %v", w.Body.String(), err)
	}
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()

	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, target); err != nil {
		t.Fatalf("Không decode được data %q: %v", string(env.Data), err)
	}
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()

	if w.Code != want {
		t.Fatalf("Status = %d, muốn %d, body: %s", w.Code, want, w.Body.String())
	}
}
