package repository

import "github.com/jhoicas/Empleados-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
// Exists permite chequear existencia referencial antes de escribir en los
// ledgers de asistencia y permisos.
type EmployeeRepository interface {
	Create(emp *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByUserID(userID string) (*entity.Employee, error)
	Exists(id string) (bool, error)
	Update(emp *entity.Employee) error
	List(limit, offset int) ([]*entity.Employee, error)
	Delete(id string) error
}
