package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.LeaveRepository = (*LeaveRepo)(nil)

const leaveColumns = `id, employee_id, employee_name, leave_type, department, start_date, end_date,
		COALESCE(reason, ''), days, status, COALESCE(approver_id::text, ''), decided_at, created_at`

// LeaveRepo implementación del puerto LeaveRepository sobre PostgreSQL.
type LeaveRepo struct {
	q Querier
}

// NewLeaveRepository construye el adaptador de solicitudes de permiso. Pasar pool o tx (Querier).
func NewLeaveRepository(q Querier) *LeaveRepo {
	return &LeaveRepo{q: q}
}

// Create persiste una nueva solicitud (estado Pending).
func (r *LeaveRepo) Create(req *entity.LeaveRequest) error {
	query := `
		INSERT INTO leave_requests (id, employee_id, employee_name, leave_type, department, start_date, end_date, reason, days, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.EmployeeID, req.EmployeeName, req.LeaveType, req.Department,
		req.StartDate, req.EndDate, req.Reason, req.Days, req.Status, req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert leave request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID. Devuelve nil si no existe.
func (r *LeaveRepo) GetByID(id string) (*entity.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = $1`
	req, err := scanLeave(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get leave request: %w", err)
	}
	return req, nil
}

// DecidePending ejecuta la transición Pending -> status como update condicional
// de una sola sentencia. Si la fila no existe o ya no está Pending devuelve
// (nil, nil): el llamador decide entre NotFound y AlreadyDecided. De dos
// llamadas concurrentes sobre la misma solicitud exactamente una recibe la
// fila actualizada.
func (r *LeaveRepo) DecidePending(id, status, approverID string, decidedAt time.Time) (*entity.LeaveRequest, error) {
	query := `
		UPDATE leave_requests
		SET status = $2, approver_id = NULLIF($3, '')::uuid, decided_at = $4
		WHERE id = $1 AND status = 'Pending'
		RETURNING ` + leaveColumns
	req, err := scanLeave(r.q.QueryRow(context.Background(), query, id, status, approverID, decidedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("decide leave request: %w", err)
	}
	return req, nil
}

// ListAll devuelve todas las solicitudes, las más recientes primero.
func (r *LeaveRepo) ListAll() ([]*entity.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests ORDER BY created_at DESC`
	return r.list(query)
}

// ListByStatus devuelve las solicitudes en un estado dado.
func (r *LeaveRepo) ListByStatus(status string) ([]*entity.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE status = $1 ORDER BY created_at DESC`
	return r.list(query, status)
}

// ListByEmployee devuelve las solicitudes de un empleado.
func (r *LeaveRepo) ListByEmployee(employeeID string) ([]*entity.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE employee_id = $1 ORDER BY created_at DESC`
	return r.list(query, employeeID)
}

func (r *LeaveRepo) list(query string, args ...any) ([]*entity.LeaveRequest, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.LeaveRequest
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("scan leave request: %w", err)
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

func scanLeave(row pgx.Row) (*entity.LeaveRequest, error) {
	var req entity.LeaveRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.EmployeeName, &req.LeaveType, &req.Department,
		&req.StartDate, &req.EndDate, &req.Reason, &req.Days, &req.Status,
		&req.ApproverID, &req.DecidedAt, &req.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
