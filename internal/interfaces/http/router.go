package http

import (
	"github.com/gofiber/fiber/v2"

	appattendance "github.com/jhoicas/Empleados-api/internal/application/attendance"
	"github.com/jhoicas/Empleados-api/internal/application/auth"
	apphr "github.com/jhoicas/Empleados-api/internal/application/hr"
	appleave "github.com/jhoicas/Empleados-api/internal/application/leave"
	"github.com/jhoicas/Empleados-api/internal/application/report"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	AttendanceUC *appattendance.AttendanceUseCase
	LeaveUC      *appleave.LeaveUseCase
	HRUC         *apphr.HRUseCase
	ReportUC     *report.ReportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/verify", authHandler.VerifyEmail)
	authGroup.Post("/requestreset", authHandler.RequestReset)
	authGroup.Post("/verifyresetcode", authHandler.VerifyResetCode)
	authGroup.Post("/resetpassword", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Employees: listar/crear/actualizar solo HR o admin; el detalle también
	// lo puede ver el propio empleado (chequeo de pertenencia en el handler).
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", RequireRole(entity.RoleAdmin, entity.RoleHRManager), employeeHandler.List)
	employees.Post("/", RequireRole(entity.RoleAdmin, entity.RoleHRManager), employeeHandler.Create)
	employees.Get("/:id", RequireRole(entity.RoleAdmin, entity.RoleHRManager, entity.RoleEmployee), employeeHandler.GetByID)
	employees.Patch("/:id", RequireRole(entity.RoleAdmin, entity.RoleHRManager), employeeHandler.Update)
	employees.Delete("/:id", RequireRole(entity.RoleAdmin), employeeHandler.Delete)

	// Attendance
	attendanceGroup := protected.Group("/attendance")
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	attendanceGroup.Post("/", RequireRole(entity.RoleEmployee, entity.RoleAdmin), attendanceHandler.Record)
	attendanceGroup.Get("/", RequireRole(entity.RoleAdmin), attendanceHandler.ListAll)
	attendanceGroup.Get("/employee/:employeeId", RequireRole(entity.RoleAdmin), attendanceHandler.SummaryByEmployee)
	attendanceGroup.Get("/my/:employeeId", RequireRole(entity.RoleEmployee, entity.RoleAdmin), attendanceHandler.MySummary)

	// Leave (lado empleado)
	leaveGroup := protected.Group("/leave")
	leaveHandler := NewLeaveHandler(deps.LeaveUC)
	leaveGroup.Post("/", RequireRole(entity.RoleEmployee), leaveHandler.File)
	leaveGroup.Get("/my/:employeeId", RequireRole(entity.RoleEmployee, entity.RoleAdmin, entity.RoleHRManager), leaveHandler.MyRequests)

	// Superficie HR (solo hr_manager; decidir permisos también admin)
	hrGroup := protected.Group("/hr")
	hrHandler := NewHRHandler(deps.EmployeeUC, deps.LeaveUC, deps.HRUC, deps.ReportUC)
	hrOnly := RequireRole(entity.RoleHRManager)
	hrGroup.Get("/employees", hrOnly, hrHandler.ListEmployees)
	hrGroup.Get("/leave-requests", hrOnly, hrHandler.ListLeaveRequests)
	hrGroup.Patch("/leave-requests/:id", RequireRole(entity.RoleHRManager, entity.RoleAdmin), hrHandler.DecideLeave)
	hrGroup.Post("/reviews", hrOnly, hrHandler.AddReview)
	hrGroup.Get("/reviews", hrOnly, hrHandler.ListAllReviews)
	hrGroup.Get("/reviews/:employeeId", hrOnly, hrHandler.ListReviews)
	hrGroup.Post("/announcements", hrOnly, hrHandler.PostAnnouncement)
	hrGroup.Get("/announcements", hrOnly, hrHandler.ListAnnouncements)
	hrGroup.Get("/reports/attendance", hrOnly, hrHandler.AttendanceReport)
}
