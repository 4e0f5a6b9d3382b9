package dto

import "time"

// FileLeaveRequest solicitud de permiso de un empleado.
type FileLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
	Reason     string `json:"reason"`
}

// DecideLeaveRequest decisión de HR/Admin sobre una solicitud Pending.
type DecideLeaveRequest struct {
	Status string `json:"status"` // Approved | Rejected
}

// LeaveResponse solicitud de permiso.
type LeaveResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	LeaveType    string     `json:"leave_type"`
	Department   string     `json:"department"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	Reason       string     `json:"reason"`
	Days         int        `json:"days"`
	Status       string     `json:"status"`
	ApproverID   string     `json:"approver_id,omitempty"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// LeaveListResponse listado de solicitudes.
type LeaveListResponse struct {
	Items []LeaveResponse `json:"items"`
}
