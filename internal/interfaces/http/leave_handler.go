package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/leave"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// LeaveHandler maneja las solicitudes de permiso del lado del empleado.
type LeaveHandler struct {
	uc *leave.LeaveUseCase
}

// NewLeaveHandler construye el handler de permisos.
func NewLeaveHandler(uc *leave.LeaveUseCase) *LeaveHandler {
	return &LeaveHandler{uc: uc}
}

// File godoc
// @Summary      Solicitar permiso
// @Tags         leave
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FileLeaveRequest  true  "employee_id, leave_type, start_date, end_date, reason"
// @Success      201   {object}  dto.LeaveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/leave [post]
func (h *LeaveHandler) File(c *fiber.Ctx) error {
	var in dto.FileLeaveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Un empleado solo solicita permisos para sí mismo.
	if GetRole(c) == entity.RoleEmployee && GetEmployeeID(c) != in.EmployeeID {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede solicitar permisos propios"})
	}
	req, err := h.uc.FileRequest(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateRange) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE_RANGE", Message: "end_date no puede ser anterior a start_date"})
		}
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPLOYEE_NOT_FOUND", Message: "el empleado no existe"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de solicitud inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(req)
}

// MyRequests godoc
// @Summary      Listar solicitudes propias
// @Tags         leave
// @Produce      json
// @Param        employeeId  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.LeaveListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/leave/my/{employeeId} [get]
func (h *LeaveHandler) MyRequests(c *fiber.Ctx) error {
	employeeID := c.Params("employeeId")
	if GetRole(c) == entity.RoleEmployee && GetEmployeeID(c) != employeeID {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede consultar sus propias solicitudes"})
	}
	out, err := h.uc.ListForEmployee(employeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
