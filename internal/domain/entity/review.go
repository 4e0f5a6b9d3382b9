package entity

import "time"

// PerformanceReview evaluación de desempeño. Historial append-only por empleado.
type PerformanceReview struct {
	ID         string
	EmployeeID string
	ReviewDate time.Time
	Rating     int // 1..5
	Comments   string
	CreatedAt  time.Time
}
