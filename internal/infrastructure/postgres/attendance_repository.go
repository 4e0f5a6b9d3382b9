package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

const attendanceColumns = `id, employee_id, employee_name, position, date, check_in, check_out, is_late, is_absent, created_at`

// AttendanceRepo implementación del puerto AttendanceRepository sobre PostgreSQL.
type AttendanceRepo struct {
	q Querier
}

// NewAttendanceRepository construye el adaptador de asistencia. Pasar pool o tx (Querier).
func NewAttendanceRepository(q Querier) *AttendanceRepo {
	return &AttendanceRepo{q: q}
}

// Upsert inserta el registro del día o completa el existente. La constraint
// única sobre (employee_id, date) garantiza a lo sumo una fila por día: si la
// fila ya existe se conserva su check_in original y se completa el check_out.
// Devuelve la fila resultante.
func (r *AttendanceRepo) Upsert(rec *entity.AttendanceRecord) (*entity.AttendanceRecord, error) {
	query := `
		INSERT INTO attendance_records (id, employee_id, employee_name, position, date, check_in, check_out, is_late, is_absent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET
			check_out = COALESCE(EXCLUDED.check_out, attendance_records.check_out),
			is_late   = attendance_records.is_late OR EXCLUDED.is_late,
			is_absent = attendance_records.is_absent OR EXCLUDED.is_absent
		RETURNING ` + attendanceColumns
	out, err := scanAttendance(r.q.QueryRow(context.Background(), query,
		rec.ID, rec.EmployeeID, rec.EmployeeName, rec.Position, rec.Date,
		rec.CheckIn, rec.CheckOut, rec.IsLate, rec.IsAbsent, rec.CreatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert attendance: %w", err)
	}
	return out, nil
}

// scanAttendance lee una fila de attendance_records. La columna date llega
// como DATE de PostgreSQL (time.Time en pgx) y se vuelca a la etiqueta
// YYYY-MM-DD que usa la entidad.
func scanAttendance(row pgx.Row) (*entity.AttendanceRecord, error) {
	var rec entity.AttendanceRecord
	var date time.Time
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.Position, &date,
		&rec.CheckIn, &rec.CheckOut, &rec.IsLate, &rec.IsAbsent, &rec.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan attendance: %w", err)
	}
	rec.Date = date.Format("2006-01-02")
	return &rec, nil
}

// ListAll devuelve todos los registros ordenados por fecha descendente.
func (r *AttendanceRepo) ListAll() ([]*entity.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records ORDER BY date DESC`
	return r.list(query)
}

// ListByEmployee devuelve los registros de un empleado ordenados por fecha descendente.
func (r *AttendanceRepo) ListByEmployee(employeeID string) ([]*entity.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE employee_id = $1 ORDER BY date DESC`
	return r.list(query, employeeID)
}

// ListBetween devuelve los registros entre dos fechas (inclusive), para reportes.
func (r *AttendanceRepo) ListBetween(fromDate, toDate string) ([]*entity.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE date BETWEEN $1 AND $2 ORDER BY date DESC`
	return r.list(query, fromDate, toDate)
}

func (r *AttendanceRepo) list(query string, args ...any) ([]*entity.AttendanceRecord, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()
	var list []*entity.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
