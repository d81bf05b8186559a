package routes

import (
	"humana/constants"
	"humana/controllers"
	"humana/jobs"
	middlewares "humana/middleware"
	"humana/services"
	"humana/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	storage := services.NewCloudinaryStorage(cld)
	documentService := services.NewDocumentService(services.DocumentServiceOptions{
		DB:      db,
		Storage: storage,
		Logger:  appLogger,
	})

	employeeController := controllers.NewEmployeeController(db, redisCli, storage, appLogger)
	departmentController := controllers.NewDepartmentController(db)
	documentController := controllers.NewDocumentController(db, documentService)
	leaveController := controllers.NewLeaveController(db, m)
	attendanceController := controllers.NewAttendanceController(db, redisCli)
	salaryController := controllers.NewSalaryController(db)

	jobs.SetAttendanceSeeder(attendanceController)

	admin := constants.RoleAdmin

	v1 := router.Group("/api/v1")

	v1.GET("/employees", middlewares.AuthMiddleware(admin), employeeController.GetEmployees)
	v1.POST("/employees", middlewares.AuthMiddleware(admin), employeeController.CreateEmployee)
	v1.GET("/employees/search", middlewares.AuthMiddleware(admin), employeeController.SearchEmployees)
	v1.GET("/employees/code/:code", middlewares.AuthMiddleware(admin), employeeController.GetEmployeeByCode)
	v1.GET("/employees/:id", middlewares.AuthMiddleware(), employeeController.GetEmployeeDetail)
	v1.PUT("/employees/:id", middlewares.AuthMiddleware(admin), employeeController.UpdateEmployee)
	v1.PUT("/employeeStatus", middlewares.AuthMiddleware(admin), employeeController.ChangeEmployeeStatus)

	v1.GET("/departments", middlewares.AuthMiddleware(), departmentController.GetDepartments)
	v1.POST("/departments", middlewares.AuthMiddleware(admin), departmentController.CreateDepartment)
	v1.GET("/departments/:id", middlewares.AuthMiddleware(), departmentController.GetDepartmentDetail)
	v1.PUT("/departments/:id", middlewares.AuthMiddleware(admin), departmentController.UpdateDepartment)
	v1.DELETE("/departments/:id", middlewares.AuthMiddleware(admin), departmentController.DeleteDepartment)
	v1.GET("/departments/:id/employees", middlewares.AuthMiddleware(admin), employeeController.GetEmployeesByDepartment)

	v1.PUT("/employees/:id/expediente", middlewares.AuthMiddleware(admin), documentController.UploadExpediente)
	v1.POST("/employees/:id/documents", middlewares.AuthMiddleware(admin), documentController.AddDocument)
	v1.DELETE("/employees/:id/documents/:documentId", middlewares.AuthMiddleware(admin), documentController.DeleteDocument)

	v1.GET("/leaves", middlewares.AuthMiddleware(), leaveController.GetLeaves)
	v1.POST("/leaves", middlewares.AuthMiddleware(), leaveController.CreateLeave)
	v1.GET("/leaves/:id", middlewares.AuthMiddleware(), leaveController.GetLeaveDetail)
	v1.PUT("/leaves/:id/decision", middlewares.AuthMiddleware(admin), leaveController.DecideLeave)

	v1.GET("/attendance/today", middlewares.AuthMiddleware(admin), attendanceController.GetTodayAttendance)
	v1.GET("/attendance/report", middlewares.AuthMiddleware(admin), attendanceController.GetAttendanceReport)
	v1.PUT("/attendance/:employeeCode", middlewares.AuthMiddleware(admin), attendanceController.MarkAttendance)

	v1.GET("/salaryHistory", middlewares.AuthMiddleware(), salaryController.GetSalaryHistory)
	v1.POST("/salary", middlewares.AuthMiddleware(admin), salaryController.AddSalary)
	v1.GET("/payroll/summary", middlewares.AuthMiddleware(admin), salaryController.GetPayrollSummary)
}
