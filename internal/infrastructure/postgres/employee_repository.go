package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, COALESCE(user_id::text, ''), name, email, department, designation,
		joining_date, salary, COALESCE(phone, ''), created_at, updated_at`

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un nuevo perfil de empleado.
func (r *EmployeeRepo) Create(emp *entity.Employee) error {
	query := `
		INSERT INTO employees (id, user_id, name, email, department, designation, joining_date, salary, phone, created_at, updated_at)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		emp.ID, emp.UserID, emp.Name, emp.Email, emp.Department, emp.Designation,
		emp.JoiningDate, emp.Salary, emp.Phone, emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID. Devuelve nil si no existe.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get employee by id")
}

// GetByUserID obtiene el empleado vinculado a una cuenta. Devuelve nil si no existe.
func (r *EmployeeRepo) GetByUserID(userID string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, userID), "get employee by user id")
}

// Exists verifica existencia referencial sin traer la fila completa.
func (r *EmployeeRepo) Exists(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("employee exists: %w", err)
	}
	return exists, nil
}

func (r *EmployeeRepo) scanOne(row pgx.Row, op string) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.Name, &e.Email, &e.Department, &e.Designation,
		&e.JoiningDate, &e.Salary, &e.Phone, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &e, nil
}

// Update actualiza un perfil de empleado.
func (r *EmployeeRepo) Update(emp *entity.Employee) error {
	query := `
		UPDATE employees SET user_id = NULLIF($2, '')::uuid, name = $3, email = $4, department = $5,
			designation = $6, joining_date = $7, salary = $8, phone = NULLIF($9, ''), updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		emp.ID, emp.UserID, emp.Name, emp.Email, emp.Department, emp.Designation,
		emp.JoiningDate, emp.Salary, emp.Phone, emp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// List lista empleados con paginación.
func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.Email, &e.Department, &e.Designation,
			&e.JoiningDate, &e.Salary, &e.Phone, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un perfil por ID. Los registros históricos de asistencia y
// permisos no se tocan (snapshot denormalizado).
func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
