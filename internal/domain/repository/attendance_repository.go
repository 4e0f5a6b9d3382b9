package repository

import "github.com/jhoicas/Empleados-api/internal/domain/entity"

// AttendanceRepository define el puerto de persistencia para AttendanceRecord.
// Upsert mantiene a lo sumo una fila por (employee_id, date): un check con
// check-out completa la fila abierta del día. Devuelve la fila resultante.
type AttendanceRepository interface {
	Upsert(rec *entity.AttendanceRecord) (*entity.AttendanceRecord, error)
	ListAll() ([]*entity.AttendanceRecord, error)
	ListByEmployee(employeeID string) ([]*entity.AttendanceRecord, error)
	ListBetween(fromDate, toDate string) ([]*entity.AttendanceRecord, error)
}
