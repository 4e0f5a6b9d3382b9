package entity

import "time"

// Tipos de permiso (conjunto unificado).
const (
	LeaveAnnual    = "Annual"
	LeaveSick      = "Sick"
	LeaveMaternity = "Maternity"
	LeavePaternity = "Paternity"
	LeaveUnpaid    = "Unpaid"
	LeavePersonal  = "Personal"
	LeaveOther     = "Other"
)

// Estados del ciclo de vida de una solicitud. Pending es el único estado no terminal.
const (
	LeavePending  = "Pending"
	LeaveApproved = "Approved"
	LeaveRejected = "Rejected"
)

// LeaveRequest solicitud de permiso de un empleado.
// Transiciona una sola vez: Pending -> Approved o Pending -> Rejected.
type LeaveRequest struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	LeaveType    string
	Department   string
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
	Days         int // días inclusivos entre StartDate y EndDate
	Status       string
	ApproverID   string     // usuario HR/admin que decidió; vacío mientras esté Pending
	DecidedAt    *time.Time // nil mientras esté Pending
	CreatedAt    time.Time
}

// ValidLeaveType verifica que el tipo esté en el conjunto unificado.
func ValidLeaveType(t string) bool {
	switch t {
	case LeaveAnnual, LeaveSick, LeaveMaternity, LeavePaternity, LeaveUnpaid, LeavePersonal, LeaveOther:
		return true
	}
	return false
}
