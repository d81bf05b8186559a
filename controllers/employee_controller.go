package controllers

import (
	"context"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"humana/config"
	"humana/constants"
	"humana/dto"
	"humana/models"
	"humana/response"
	"humana/services"
	slog "humana/services/logger"
	"humana/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const employeeCacheKey = "employees:all"

type EmployeeController struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Storage services.AssetStorage
	Logger  slog.Logger
}

func NewEmployeeController(db *gorm.DB, redisCli *redis.Client, storage services.AssetStorage, logger slog.Logger) EmployeeController {
	return EmployeeController{
		DB:      db,
		Redis:   redisCli,
		Storage: storage,
		Logger:  logger,
	}
}

// findEmployeeByRef tìm nhân viên theo id nội bộ, không thấy thì thử theo
// user id (client cũ gửi cả hai loại id trên cùng một route).
func findEmployeeByRef(db *gorm.DB, ref string) (*models.Employee, error) {
	var employee models.Employee
	query := db.Preload("User").Preload("Department").Preload("Documents")

	if err := query.First(&employee, "id = ?", ref).Error; err == nil {
		return &employee, nil
	}

	if err := query.First(&employee, "user_id = ?", ref).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func employeeToResponse(employee models.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:             employee.ID,
		EmployeeCode:   employee.EmployeeCode,
		Name:           employee.User.Name,
		Email:          employee.User.Email,
		ProfileImage:   employee.User.ProfileImage,
		DepartmentID:   employee.DepartmentID,
		DepartmentName: employee.Department.Name,
		Designation:    employee.Designation,
		DateOfBirth:    employee.DateOfBirth,
		Gender:         employee.Gender,
		MaritalStatus:  employee.MaritalStatus,
		BasicSalary:    employee.BasicSalary,
		Status:         employee.Status,
		CreatedAt:      employee.CreatedAt,
		UpdatedAt:      employee.UpdatedAt,
	}

	if employee.ExpedienteFile != "" {
		resp.Expediente = &dto.ExpedienteInfo{
			URL:          employee.ExpedienteFile,
			OriginalName: employee.ExpedienteOriginalName,
			UploadedAt:   employee.ExpedienteUploadedAt,
		}
	}

	for _, doc := range employee.Documents {
		resp.Documents = append(resp.Documents, dto.DocumentResponse{
			ID:           doc.ID,
			Label:        doc.Label,
			Category:     doc.Category,
			FileURL:      doc.FileURL,
			OriginalName: doc.OriginalName,
			UploadedAt:   doc.UploadedAt,
		})
	}

	return resp
}

// CreateEmployee tạo tài khoản user rồi hồ sơ nhân viên trong một transaction.
// Ảnh đại diện (nếu có) upload trước, insert lỗi thì dọn asset best-effort.
func (e EmployeeController) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
	if err := validator.ValidateUser(&user); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	employee := models.Employee{
		EmployeeCode:  req.EmployeeCode,
		DepartmentID:  req.DepartmentID,
		Designation:   req.Designation,
		DateOfBirth:   req.DateOfBirth,
		Gender:        req.Gender,
		MaritalStatus: req.MaritalStatus,
		BasicSalary:   req.BasicSalary,
		Status:        constants.EmployeeStatusActive,
	}
	if err := validator.ValidateEmployee(&employee); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var existingUser models.User
	if err := e.DB.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		response.Conflict(c, "Email đã được đăng ký")
		return
	}

	var existingEmployee models.Employee
	if err := e.DB.Where("employee_code = ?", req.EmployeeCode).First(&existingEmployee).Error; err == nil {
		response.Conflict(c, "Mã nhân viên đã tồn tại")
		return
	}

	var department models.Department
	if err := e.DB.First(&department, req.DepartmentID).Error; err != nil {
		response.BadRequest(c, "Không tìm thấy phòng ban")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.ServerError(c)
		return
	}
	user.Password = string(hashedPassword)

	// Upload ảnh đại diện trước khi ghi DB
	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			response.BadRequest(c, "Lỗi khi mở file")
			return
		}
		defer src.Close()

		asset, err := e.Storage.UploadBuffer(c.Request.Context(), src, services.FolderProfiles, services.AssetPublicID(req.EmployeeCode))
		if err != nil {
			response.BadRequest(c, "Upload ảnh đại diện thất bại")
			return
		}
		user.ProfileImage = asset.URL
		user.ProfileImagePublicID = asset.PublicID
	}

	err = e.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		employee.UserID = user.ID
		return tx.Create(&employee).Error
	})
	if err != nil {
		// Insert lỗi thì ảnh vừa upload thành mồ côi, dọn best-effort
		services.CleanupAsset(context.Background(), e.Storage, e.Logger, user.ProfileImagePublicID)
		response.ServerError(c)
		return
	}

	e.invalidateEmployeeCache()

	employee.User = user
	employee.Department = department
	response.Success(c, employeeToResponse(employee))
}

func (e EmployeeController) GetEmployees(c *gin.Context) {
	nameFilter := c.Query("name")
	statusFilter := c.Query("status")
	departmentFilter := c.Query("department")

	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var allEmployees []models.Employee

	// Kiểm tra cache
	if e.Redis != nil {
		if err := services.GetFromRedis(config.Ctx, e.Redis, employeeCacheKey, &allEmployees); err != nil {
			log.Printf("Không đọc được cache nhân viên: %v", err)
		}
	}

	if len(allEmployees) == 0 {
		if err := e.DB.Preload("User").Preload("Department").Preload("Documents").Find(&allEmployees).Error; err != nil {
			response.ServerError(c)
			return
		}

		if e.Redis != nil {
			if err := services.SetToRedis(config.Ctx, e.Redis, employeeCacheKey, allEmployees, 10*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu danh sách nhân viên vào Redis: %v", err)
			}
		}
	}

	filteredEmployees := make([]dto.EmployeeResponse, 0)
	for _, employee := range allEmployees {
		if statusFilter != "" && employee.Status != statusFilter {
			continue
		}

		if departmentFilter != "" {
			depID, _ := strconv.Atoi(departmentFilter)
			if employee.DepartmentID != uint(depID) {
				continue
			}
		}

		if nameFilter != "" &&
			!strings.Contains(strings.ToLower(employee.User.Name), strings.ToLower(nameFilter)) &&
			!strings.Contains(strings.ToLower(employee.EmployeeCode), strings.ToLower(nameFilter)) {
			continue
		}

		filteredEmployees = append(filteredEmployees, employeeToResponse(employee))
	}

	sort.Slice(filteredEmployees, func(i, j int) bool {
		return filteredEmployees[i].ID < filteredEmployees[j].ID
	})

	total := len(filteredEmployees)
	start := page * limit
	end := start + limit
	if start >= total {
		filteredEmployees = []dto.EmployeeResponse{}
	} else if end > total {
		filteredEmployees = filteredEmployees[start:]
	} else {
		filteredEmployees = filteredEmployees[start:end]
	}

	response.SuccessWithPagination(c, filteredEmployees, page, limit, total)
}

func (e EmployeeController) GetEmployeeDetail(c *gin.Context) {
	employee, err := findEmployeeByRef(e.DB, c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, employeeToResponse(*employee))
}

func (e EmployeeController) GetEmployeeByCode(c *gin.Context) {
	var employee models.Employee
	code := c.Param("code")

	if err := e.DB.Preload("User").Preload("Department").Preload("Documents").
		Where("employee_code = ?", code).First(&employee).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, employeeToResponse(employee))
}

func (e EmployeeController) GetEmployeesByDepartment(c *gin.Context) {
	var employees []models.Employee
	id := c.Param("id")

	if err := e.DB.Preload("User").Preload("Department").
		Where("department_id = ?", id).Find(&employees).Error; err != nil {
		response.ServerError(c)
		return
	}

	employeeResponses := make([]dto.EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		employeeResponses = append(employeeResponses, employeeToResponse(employee))
	}

	response.SuccessWithTotal(c, employeeResponses, len(employeeResponses))
}

func (e EmployeeController) UpdateEmployee(c *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	employee, err := findEmployeeByRef(e.DB, c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return
	}

	if req.Name != "" && req.Name != " " {
		if err := e.DB.Model(&models.User{}).Where("id = ?", employee.UserID).Update("name", req.Name).Error; err != nil {
			response.ServerError(c)
			return
		}
		employee.User.Name = req.Name
	}

	if req.MaritalStatus != "" {
		employee.MaritalStatus = req.MaritalStatus
	}
	if req.Designation != "" {
		employee.Designation = req.Designation
	}
	if req.DepartmentID != 0 {
		var department models.Department
		if err := e.DB.First(&department, req.DepartmentID).Error; err != nil {
			response.BadRequest(c, "Không tìm thấy phòng ban")
			return
		}
		employee.DepartmentID = req.DepartmentID
		employee.Department = department
	}
	if req.BasicSalary != nil {
		if *req.BasicSalary < 0 {
			response.ValidationError(c, "Lương cơ bản không được âm")
			return
		}
		employee.BasicSalary = *req.BasicSalary
	}

	if err := e.DB.Save(employee).Error; err != nil {
		response.ServerError(c)
		return
	}

	e.invalidateEmployeeCache()

	response.Success(c, employeeToResponse(*employee))
}

func (e EmployeeController) ChangeEmployeeStatus(c *gin.Context) {
	var req dto.EmployeeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateEmployeeStatus(req.Status); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var employee models.Employee
	if err := e.DB.Preload("User").Preload("Department").First(&employee, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	employee.Status = req.Status
	if err := e.DB.Save(&employee).Error; err != nil {
		response.ServerError(c)
		return
	}

	e.invalidateEmployeeCache()

	response.Success(c, employeeToResponse(employee))
}

func (e EmployeeController) invalidateEmployeeCache() {
	if e.Redis == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, e.Redis, employeeCacheKey); err != nil {
		log.Printf("Lỗi khi xóa cache nhân viên: %v", err)
	}
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Tạo danh sách tên phòng ban duy nhất cho closestmatch
func prepareDepartmentList(employees []models.Employee) []string {
	uniqueValues := make(map[string]bool)
	for _, employee := range employees {
		if employee.Department.Name != "" {
			uniqueValues[normalizeInput(employee.Department.Name)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp cho một nhân viên với câu truy vấn
func calculateEmployeeScore(query string, employee models.Employee, cmDepartment *closestmatch.ClosestMatch) int {
	score := 0

	name := normalizeInput(employee.User.Name)
	if strings.Contains(name, query) {
		score += 20
	} else if calculateSimilarity(query, name) > 0.6 {
		score += 12
	}

	code := normalizeInput(employee.EmployeeCode)
	if strings.Contains(code, query) || query == code {
		score += 18
	}

	designation := normalizeInput(employee.Designation)
	if designation != "" && (strings.Contains(designation, query) || calculateSimilarity(query, designation) > 0.7) {
		score += 8
	}

	if cmDepartment != nil && employee.Department.Name != "" {
		if cmDepartment.Closest(query) == normalizeInput(employee.Department.Name) {
			score += 5
		}
	}

	return score
}

// SearchEmployees tìm kiếm gần đúng trong danh bạ nhân viên theo tên,
// mã, chức danh và phòng ban, không phân biệt dấu.
func (e EmployeeController) SearchEmployees(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Thiếu tham số q")
		return
	}
	normalizedQuery := normalizeInput(query)

	var employees []models.Employee
	if err := e.DB.Preload("User").Preload("Department").Find(&employees).Error; err != nil {
		response.ServerError(c)
		return
	}

	var cmDepartment *closestmatch.ClosestMatch
	if departmentList := prepareDepartmentList(employees); len(departmentList) > 0 {
		cmDepartment = createMatcher(departmentList)
	}

	scoreCh := make(chan dto.ScoredEmployee, len(employees))
	var wg sync.WaitGroup

	for _, employee := range employees {
		wg.Add(1)
		go func(employee models.Employee) {
			defer wg.Done()
			score := calculateEmployeeScore(normalizedQuery, employee, cmDepartment)
			if score > 0 {
				scoreCh <- dto.ScoredEmployee{
					Employee: employeeToResponse(employee),
					Score:    score,
				}
			}
		}(employee)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	scored := make([]dto.ScoredEmployee, 0)
	for s := range scoreCh {
		scored = append(scored, s)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score == scored[j].Score {
			return scored[i].Employee.ID < scored[j].Employee.ID
		}
		return scored[i].Score > scored[j].Score
	})

	response.SuccessWithTotal(c, scored, len(scored))
}
