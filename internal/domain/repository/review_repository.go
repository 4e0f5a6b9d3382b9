package repository

import "github.com/jhoicas/Empleados-api/internal/domain/entity"

// ReviewRepository define el puerto de persistencia para PerformanceReview.
// Historial append-only: no hay update ni delete.
type ReviewRepository interface {
	Create(r *entity.PerformanceReview) error
	ListByEmployee(employeeID string) ([]*entity.PerformanceReview, error)
	List() ([]*entity.PerformanceReview, error)
}
