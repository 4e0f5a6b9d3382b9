package dto

import "time"

// RecordAttendanceRequest registro de check-in/check-out.
// CheckOut es opcional: una llamada solo con CheckIn abre el registro del día;
// una llamada posterior con CheckOut lo completa.
type RecordAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`      // YYYY-MM-DD
	CheckIn    string `json:"check_in"`  // RFC 3339
	CheckOut   string `json:"check_out,omitempty"`
	IsLate     bool   `json:"is_late,omitempty"`
	IsAbsent   bool   `json:"is_absent,omitempty"`
}

// AttendanceResponse registro de asistencia.
type AttendanceResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	Position     string     `json:"position"`
	Date         string     `json:"date"`
	CheckIn      time.Time  `json:"check_in"`
	CheckOut     *time.Time `json:"check_out,omitempty"`
	IsLate       bool       `json:"is_late"`
	IsAbsent     bool       `json:"is_absent"`
	CreatedAt    time.Time  `json:"created_at"`
}

// AttendanceListResponse listado de registros de asistencia.
type AttendanceListResponse struct {
	Items []AttendanceResponse `json:"items"`
}
