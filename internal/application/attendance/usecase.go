package attendance

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// AttendanceUseCase ledger de asistencia: registro de check-in/check-out y consultas.
type AttendanceUseCase struct {
	repo    repository.AttendanceRepository
	empRepo repository.EmployeeRepository
}

// NewAttendanceUseCase construye el caso de uso.
func NewAttendanceUseCase(repo repository.AttendanceRepository, empRepo repository.EmployeeRepository) *AttendanceUseCase {
	return &AttendanceUseCase{repo: repo, empRepo: empRepo}
}

// RecordCheck registra un check de asistencia. Valida que el empleado exista y
// que los timestamps sean parseables; si viene check-out debe ser >= check-in.
// Los flags is_late/is_absent los decide el llamador (por defecto false); este
// caso de uso no calcula tardanza contra un umbral.
//
// Hay a lo sumo un registro por (empleado, fecha): un check con check-out
// completa el registro abierto del día.
func (uc *AttendanceUseCase) RecordCheck(in dto.RecordAttendanceRequest) (*dto.AttendanceResponse, error) {
	if in.EmployeeID == "" || in.CheckIn == "" {
		return nil, domain.ErrInvalidInput
	}
	emp, err := uc.empRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	checkIn, err := time.Parse(time.RFC3339, in.CheckIn)
	if err != nil {
		return nil, domain.ErrInvalidTimestamp
	}
	var checkOut *time.Time
	if in.CheckOut != "" {
		t, err := time.Parse(time.RFC3339, in.CheckOut)
		if err != nil {
			return nil, domain.ErrInvalidTimestamp
		}
		if t.Before(checkIn) {
			return nil, domain.ErrInvalidTimestamp
		}
		checkOut = &t
	}
	date := in.Date
	if date == "" {
		date = checkIn.Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, domain.ErrInvalidInput
	}
	rec := &entity.AttendanceRecord{
		ID:           uuid.New().String(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Position:     emp.Designation,
		Date:         date,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		IsLate:       in.IsLate,
		IsAbsent:     in.IsAbsent,
		CreatedAt:    time.Now(),
	}
	saved, err := uc.repo.Upsert(rec)
	if err != nil {
		return nil, err
	}
	return toAttendanceResponse(saved), nil
}

// ListAll devuelve todos los registros ordenados por fecha descendente.
func (uc *AttendanceUseCase) ListAll() (*dto.AttendanceListResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toAttendanceList(list), nil
}

// SummaryFor devuelve los registros de un empleado ordenados por fecha descendente.
func (uc *AttendanceUseCase) SummaryFor(employeeID string) (*dto.AttendanceListResponse, error) {
	list, err := uc.repo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	return toAttendanceList(list), nil
}

func toAttendanceList(list []*entity.AttendanceRecord) *dto.AttendanceListResponse {
	items := make([]dto.AttendanceResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toAttendanceResponse(r))
	}
	return &dto.AttendanceListResponse{Items: items}
}

func toAttendanceResponse(r *entity.AttendanceRecord) *dto.AttendanceResponse {
	if r == nil {
		return nil
	}
	return &dto.AttendanceResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Position:     r.Position,
		Date:         r.Date,
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
		IsLate:       r.IsLate,
		IsAbsent:     r.IsAbsent,
		CreatedAt:    r.CreatedAt,
	}
}
