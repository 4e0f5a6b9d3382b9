package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee perfil laboral de un usuario (departamento, cargo, salario).
type Employee struct {
	ID          string
	UserID      string // cuenta asociada; vacío si aún no se vincula
	Name        string
	Email       string
	Department  string
	Designation string
	JoiningDate time.Time       // solo fecha; hora en cero
	Salary      decimal.Decimal // mensual, en la moneda de la empresa
	Phone       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
