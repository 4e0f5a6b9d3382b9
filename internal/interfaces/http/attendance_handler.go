package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleados-api/internal/application/attendance"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// AttendanceHandler maneja el ledger de asistencia.
type AttendanceHandler struct {
	uc *attendance.AttendanceUseCase
}

// NewAttendanceHandler construye el handler de asistencia.
func NewAttendanceHandler(uc *attendance.AttendanceUseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar check-in/check-out
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordAttendanceRequest  true  "employee_id, check_in, check_out opcional"
// @Success      201   {object}  dto.AttendanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/attendance [post]
func (h *AttendanceHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordAttendanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Un empleado solo registra su propia asistencia.
	if GetRole(c) == entity.RoleEmployee && GetEmployeeID(c) != in.EmployeeID {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede registrar su propia asistencia"})
	}
	rec, err := h.uc.RecordCheck(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPLOYEE_NOT_FOUND", Message: "el empleado no existe"})
		}
		if errors.Is(err, domain.ErrInvalidTimestamp) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TIMESTAMP", Message: "check_in/check_out inválido"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employee_id y check_in son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// ListAll godoc
// @Summary      Listar toda la asistencia
// @Tags         attendance
// @Produce      json
// @Success      200  {object}  dto.AttendanceListResponse
// @Router       /api/attendance [get]
func (h *AttendanceHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SummaryByEmployee godoc
// @Summary      Resumen de asistencia de un empleado (admin)
// @Tags         attendance
// @Produce      json
// @Param        employeeId  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.AttendanceListResponse
// @Router       /api/attendance/employee/{employeeId} [get]
func (h *AttendanceHandler) SummaryByEmployee(c *fiber.Ctx) error {
	out, err := h.uc.SummaryFor(c.Params("employeeId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MySummary godoc
// @Summary      Resumen de asistencia propio
// @Tags         attendance
// @Produce      json
// @Param        employeeId  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.AttendanceListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/attendance/my/{employeeId} [get]
func (h *AttendanceHandler) MySummary(c *fiber.Ctx) error {
	employeeID := c.Params("employeeId")
	if GetRole(c) == entity.RoleEmployee && GetEmployeeID(c) != employeeID {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede consultar su propia asistencia"})
	}
	out, err := h.uc.SummaryFor(employeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
