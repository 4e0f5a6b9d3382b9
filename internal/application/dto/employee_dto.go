package dto

import "time"

// CreateEmployeeRequest onboarding de un empleado (HR/Admin).
// Si Email coincide con una cuenta existente, el perfil queda vinculado a ella.
type CreateEmployeeRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	JoiningDate string `json:"joining_date"` // YYYY-MM-DD
	Salary      string `json:"salary"`       // decimal como string
	Phone       string `json:"phone,omitempty"`
}

// UpdateEmployeeRequest actualización parcial de un perfil.
type UpdateEmployeeRequest struct {
	Name        *string `json:"name,omitempty"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
	Salary      *string `json:"salary,omitempty"`
	Phone       *string `json:"phone,omitempty"`
}

// EmployeeResponse representación pública de un empleado.
type EmployeeResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id,omitempty"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Department  string    `json:"department"`
	Designation string    `json:"designation"`
	JoiningDate string    `json:"joining_date"`
	Salary      string    `json:"salary"`
	Phone       string    `json:"phone,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EmployeeListResponse listado paginado de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
