package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleHRManager = "hr_manager"
	RoleEmployee  = "employee"
)

// User representa una cuenta del sistema (puede tener asociado un perfil de Employee).
type User struct {
	ID               string
	Email            string
	PasswordHash     string // bcrypt hash, nunca plano en dominio después de persistir
	Name             string
	Role             string // admin, hr_manager, employee
	Status           string // active, inactive
	Verified         bool   // email verificado
	VerificationCode string // código de 6 dígitos enviado por correo; vacío tras verificar
	ResetCode        string // código de recuperación de contraseña; vacío si no hay reset en curso
	EmployeeID       string // perfil de empleado asociado (vacío si no tiene)
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ValidRole verifica que el rol sea uno de los conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleHRManager, RoleEmployee:
		return true
	}
	return false
}
