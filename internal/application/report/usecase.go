package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ReportUseCase genera el reporte de asistencia y permisos en formato xlsx
// para descarga desde la superficie de RRHH.
type ReportUseCase struct {
	attRepo   repository.AttendanceRepository
	leaveRepo repository.LeaveRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(attRepo repository.AttendanceRepository, leaveRepo repository.LeaveRepository) *ReportUseCase {
	return &ReportUseCase{attRepo: attRepo, leaveRepo: leaveRepo}
}

// AttendanceReport arma un libro con dos hojas: Asistencia y Permisos.
// Si fromDate/toDate vienen vacíos se incluye todo el ledger.
func (uc *ReportUseCase) AttendanceReport(fromDate, toDate string) (*bytes.Buffer, error) {
	var (
		records []*entity.AttendanceRecord
		err     error
	)
	if fromDate != "" && toDate != "" {
		records, err = uc.attRepo.ListBetween(fromDate, toDate)
	} else {
		records, err = uc.attRepo.ListAll()
	}
	if err != nil {
		return nil, err
	}
	leaves, err := uc.leaveRepo.ListAll()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const attSheet = "Asistencia"
	f.SetSheetName("Sheet1", attSheet)
	attHeaders := []string{"Empleado", "Cargo", "Fecha", "Entrada", "Salida", "Tarde", "Ausente"}
	for i, h := range attHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(attSheet, cell, h); err != nil {
			return nil, fmt.Errorf("escribir encabezado: %w", err)
		}
	}
	for i, r := range records {
		checkOut := ""
		if r.CheckOut != nil {
			checkOut = r.CheckOut.Format("15:04")
		}
		row := []interface{}{
			r.EmployeeName, r.Position, r.Date, r.CheckIn.Format("15:04"), checkOut,
			yesNo(r.IsLate), yesNo(r.IsAbsent),
		}
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(attSheet, cell, v); err != nil {
				return nil, fmt.Errorf("escribir fila de asistencia: %w", err)
			}
		}
	}

	const leaveSheet = "Permisos"
	if _, err := f.NewSheet(leaveSheet); err != nil {
		return nil, err
	}
	leaveHeaders := []string{"Empleado", "Departamento", "Tipo", "Desde", "Hasta", "Días", "Estado"}
	for i, h := range leaveHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(leaveSheet, cell, h); err != nil {
			return nil, fmt.Errorf("escribir encabezado: %w", err)
		}
	}
	for i, l := range leaves {
		row := []interface{}{
			l.EmployeeName, l.Department, l.LeaveType,
			l.StartDate.Format(dateLayout), l.EndDate.Format(dateLayout), l.Days, l.Status,
		}
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(leaveSheet, cell, v); err != nil {
				return nil, fmt.Errorf("escribir fila de permisos: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return &buf, nil
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
