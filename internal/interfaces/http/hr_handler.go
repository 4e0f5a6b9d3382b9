package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/hr"
	"github.com/jhoicas/Empleados-api/internal/application/leave"
	"github.com/jhoicas/Empleados-api/internal/application/report"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// HRHandler superficie de coordinación de RRHH: listados agregados, decisión
// de permisos, anuncios, evaluaciones y reportes. Todas las rutas pasan antes
// por RequireRole(hr_manager) (decide también admite admin).
type HRHandler struct {
	employeeUC *usecase.EmployeeUseCase
	leaveUC    *leave.LeaveUseCase
	hrUC       *hr.HRUseCase
	reportUC   *report.ReportUseCase
}

// NewHRHandler construye el handler de la superficie HR.
func NewHRHandler(employeeUC *usecase.EmployeeUseCase, leaveUC *leave.LeaveUseCase, hrUC *hr.HRUseCase, reportUC *report.ReportUseCase) *HRHandler {
	return &HRHandler{employeeUC: employeeUC, leaveUC: leaveUC, hrUC: hrUC, reportUC: reportUC}
}

// ListEmployees godoc
// @Summary      Listar empleados (HR)
// @Tags         hr
// @Produce      json
// @Success      200  {object}  dto.EmployeeListResponse
// @Router       /api/hr/employees [get]
func (h *HRHandler) ListEmployees(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.employeeUC.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListLeaveRequests godoc
// @Summary      Listar solicitudes de permiso
// @Tags         hr
// @Produce      json
// @Param        status  query  string  false  "filtrar por estado (Pending, Approved, Rejected)"
// @Success      200  {object}  dto.LeaveListResponse
// @Router       /api/hr/leave-requests [get]
func (h *HRHandler) ListLeaveRequests(c *fiber.Ctx) error {
	var (
		out *dto.LeaveListResponse
		err error
	)
	switch status := c.Query("status"); status {
	case "":
		out, err = h.leaveUC.ListAll()
	case entity.LeavePending:
		out, err = h.leaveUC.ListPending()
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status de filtro no soportado"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DecideLeave godoc
// @Summary      Aprobar o rechazar una solicitud Pending
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.DecideLeaveRequest  true  "status: Approved | Rejected"
// @Success      200   {object}  dto.LeaveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/hr/leave-requests/{id} [patch]
func (h *HRHandler) DecideLeave(c *fiber.Ctx) error {
	var in dto.DecideLeaveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	req, err := h.leaveUC.Decide(c.Context(), c.Params("id"), in.Status, GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser Approved o Rejected"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		}
		if errors.Is(err, domain.ErrAlreadyDecided) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_DECIDED", Message: "la solicitud ya fue decidida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(req)
}

// AddReview godoc
// @Summary      Agregar evaluación de desempeño
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReviewRequest  true  "employee_id, rating 1..5, comments"
// @Success      201   {object}  dto.ReviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/hr/reviews [post]
func (h *HRHandler) AddReview(c *fiber.Ctx) error {
	var in dto.CreateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rev, err := h.hrUC.AddReview(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPLOYEE_NOT_FOUND", Message: "el empleado no existe"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rating debe estar entre 1 y 5"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(rev)
}

// ListAllReviews godoc
// @Summary      Listar todas las evaluaciones
// @Tags         hr
// @Produce      json
// @Success      200  {array}  dto.ReviewResponse
// @Router       /api/hr/reviews [get]
func (h *HRHandler) ListAllReviews(c *fiber.Ctx) error {
	items, err := h.hrUC.ListReviews()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// ListReviews godoc
// @Summary      Listar evaluaciones de un empleado
// @Tags         hr
// @Produce      json
// @Param        employeeId  path  string  true  "ID del empleado"
// @Success      200  {array}  dto.ReviewResponse
// @Router       /api/hr/reviews/{employeeId} [get]
func (h *HRHandler) ListReviews(c *fiber.Ctx) error {
	items, err := h.hrUC.ListReviewsFor(c.Params("employeeId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// PostAnnouncement godoc
// @Summary      Publicar anuncio
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAnnouncementRequest  true  "title, content, priority opcional"
// @Success      201   {object}  dto.AnnouncementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/hr/announcements [post]
func (h *HRHandler) PostAnnouncement(c *fiber.Ctx) error {
	var in dto.CreateAnnouncementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	a, err := h.hrUC.PostAnnouncement(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y content son requeridos; priority debe ser Low, Medium o High"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

// ListAnnouncements godoc
// @Summary      Listar anuncios
// @Tags         hr
// @Produce      json
// @Success      200  {array}  dto.AnnouncementResponse
// @Router       /api/hr/announcements [get]
func (h *HRHandler) ListAnnouncements(c *fiber.Ctx) error {
	items, err := h.hrUC.ListAnnouncements()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// AttendanceReport godoc
// @Summary      Descargar reporte de asistencia y permisos (xlsx)
// @Tags         hr
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from  query  string  false  "fecha inicial YYYY-MM-DD"
// @Param        to    query  string  false  "fecha final YYYY-MM-DD"
// @Success      200  "archivo xlsx"
// @Router       /api/hr/reports/attendance [get]
func (h *HRHandler) AttendanceReport(c *fiber.Ctx) error {
	from, to := c.Query("from"), c.Query("to")
	if (from == "") != (to == "") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to deben enviarse juntos"})
	}
	buf, err := h.reportUC.AttendanceReport(from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := "asistencia-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
