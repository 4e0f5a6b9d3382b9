package entity

import "time"

// AttendanceRecord registro de asistencia de un empleado para una fecha.
// Hay a lo sumo un registro por (EmployeeID, Date): el check-out completa el
// registro abierto del día en vez de crear uno nuevo.
type AttendanceRecord struct {
	ID           string
	EmployeeID   string
	EmployeeName string // snapshot al momento del registro
	Position     string // snapshot al momento del registro
	Date         string // etiqueta YYYY-MM-DD
	CheckIn      time.Time
	CheckOut     *time.Time // nil mientras no haya check-out
	IsLate       bool
	IsAbsent     bool
	CreatedAt    time.Time
}
