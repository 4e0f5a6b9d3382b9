package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/ports"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// LeaveUseCase flujo de solicitudes de permiso: alta, listados y decisión.
//
// La decisión es la única mutación y se apoya en el update condicional del
// repositorio (WHERE status = 'Pending'): de dos decisiones concurrentes sobre
// la misma solicitud exactamente una gana y la otra recibe ErrAlreadyDecided.
type LeaveUseCase struct {
	repo    repository.LeaveRepository
	empRepo repository.EmployeeRepository
	mailer  ports.Mailer
}

// NewLeaveUseCase construye el caso de uso. mailer puede ser una variante no-op.
func NewLeaveUseCase(repo repository.LeaveRepository, empRepo repository.EmployeeRepository, mailer ports.Mailer) *LeaveUseCase {
	return &LeaveUseCase{repo: repo, empRepo: empRepo, mailer: mailer}
}

// FileRequest crea una solicitud en estado Pending. Los días se cuentan de
// forma inclusiva: (2024-01-01, 2024-01-03) son 3 días. No hay deduplicación
// ni chequeo de solapamiento contra otras solicitudes del empleado.
func (uc *LeaveUseCase) FileRequest(in dto.FileLeaveRequest) (*dto.LeaveResponse, error) {
	if in.EmployeeID == "" || in.LeaveType == "" || in.StartDate == "" || in.EndDate == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidLeaveType(in.LeaveType) {
		return nil, domain.ErrInvalidInput
	}
	emp, err := uc.empRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidDateRange
	}
	days := int(end.Sub(start).Hours()/24) + 1
	req := &entity.LeaveRequest{
		ID:           uuid.New().String(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		LeaveType:    in.LeaveType,
		Department:   emp.Department,
		StartDate:    start,
		EndDate:      end,
		Reason:       in.Reason,
		Days:         days,
		Status:       entity.LeavePending,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(req); err != nil {
		return nil, err
	}
	return toLeaveResponse(req), nil
}

// ListAll devuelve todas las solicitudes.
func (uc *LeaveUseCase) ListAll() (*dto.LeaveListResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toLeaveList(list), nil
}

// ListPending devuelve las solicitudes aún sin decidir.
func (uc *LeaveUseCase) ListPending() (*dto.LeaveListResponse, error) {
	list, err := uc.repo.ListByStatus(entity.LeavePending)
	if err != nil {
		return nil, err
	}
	return toLeaveList(list), nil
}

// ListForEmployee devuelve las solicitudes de un empleado.
func (uc *LeaveUseCase) ListForEmployee(employeeID string) (*dto.LeaveListResponse, error) {
	list, err := uc.repo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	return toLeaveList(list), nil
}

// Decide aprueba o rechaza una solicitud Pending. Falla con ErrNotFound si el
// ID no existe y con ErrAlreadyDecided si la solicitud ya está en estado
// terminal; en ese caso el estado persistido no cambia.
func (uc *LeaveUseCase) Decide(ctx context.Context, requestID, status, approverID string) (*dto.LeaveResponse, error) {
	if status != entity.LeaveApproved && status != entity.LeaveRejected {
		return nil, domain.ErrInvalidInput
	}
	decided, err := uc.repo.DecidePending(requestID, status, approverID, time.Now())
	if err != nil {
		return nil, err
	}
	if decided == nil {
		// El update condicional no tocó filas: o no existe o ya estaba decidida.
		existing, err := uc.repo.GetByID(requestID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrAlreadyDecided
	}
	uc.notifyDecision(ctx, decided)
	return toLeaveResponse(decided), nil
}

// notifyDecision avisa al empleado por correo. El fallo del correo no revierte la decisión.
func (uc *LeaveUseCase) notifyDecision(ctx context.Context, req *entity.LeaveRequest) {
	emp, err := uc.empRepo.GetByID(req.EmployeeID)
	if err != nil || emp == nil || emp.Email == "" {
		return
	}
	subject := fmt.Sprintf("Tu solicitud de permiso fue %s", translateStatus(req.Status))
	body := fmt.Sprintf("Hola %s, tu solicitud de permiso (%s, %s a %s) fue %s.",
		emp.Name, req.LeaveType, req.StartDate.Format(dateLayout), req.EndDate.Format(dateLayout),
		translateStatus(req.Status))
	_ = uc.mailer.Send(ctx, emp.Email, subject, body)
}

func translateStatus(status string) string {
	switch status {
	case entity.LeaveApproved:
		return "aprobada"
	case entity.LeaveRejected:
		return "rechazada"
	}
	return status
}

func toLeaveList(list []*entity.LeaveRequest) *dto.LeaveListResponse {
	items := make([]dto.LeaveResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toLeaveResponse(r))
	}
	return &dto.LeaveListResponse{Items: items}
}

func toLeaveResponse(r *entity.LeaveRequest) *dto.LeaveResponse {
	if r == nil {
		return nil
	}
	return &dto.LeaveResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		LeaveType:    r.LeaveType,
		Department:   r.Department,
		StartDate:    r.StartDate.Format(dateLayout),
		EndDate:      r.EndDate.Format(dateLayout),
		Reason:       r.Reason,
		Days:         r.Days,
		Status:       r.Status,
		ApproverID:   r.ApproverID,
		DecidedAt:    r.DecidedAt,
		CreatedAt:    r.CreatedAt,
	}
}
