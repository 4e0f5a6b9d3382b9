package repository

import (
	"time"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// LeaveRepository define el puerto de persistencia para LeaveRequest.
//
// DecidePending es un update condicional de una sola sentencia
// (WHERE status = 'Pending'): devuelve la solicitud actualizada si esta
// invocación ganó la transición, o (nil, nil) si la fila no estaba Pending.
// Dos decisiones concurrentes sobre la misma solicitud producen exactamente
// un ganador.
type LeaveRepository interface {
	Create(req *entity.LeaveRequest) error
	GetByID(id string) (*entity.LeaveRequest, error)
	ListAll() ([]*entity.LeaveRequest, error)
	ListByStatus(status string) ([]*entity.LeaveRequest, error)
	ListByEmployee(employeeID string) ([]*entity.LeaveRequest, error)
	DecidePending(id, status, approverID string, decidedAt time.Time) (*entity.LeaveRequest, error)
}
