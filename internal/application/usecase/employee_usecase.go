package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

// dateLayout formato de fechas sin hora en la API.
const dateLayout = "2006-01-02"

// EmployeeUseCase aplica reglas de negocio para perfiles de empleado (onboarding, actualización, baja).
type EmployeeUseCase struct {
	repo     repository.EmployeeRepository
	userRepo repository.UserRepository
}

// NewEmployeeUseCase construye el caso de uso con los puertos de persistencia.
func NewEmployeeUseCase(repo repository.EmployeeRepository, userRepo repository.UserRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, userRepo: userRepo}
}

// Create da de alta un perfil de empleado (onboarding HR/Admin).
// Si existe una cuenta con el mismo email, el perfil queda vinculado a ella.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.Email == "" || in.Department == "" || in.Designation == "" {
		return nil, domain.ErrInvalidInput
	}
	joining, err := time.Parse(dateLayout, in.JoiningDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	salary := decimal.Zero
	if in.Salary != "" {
		salary, err = decimal.NewFromString(in.Salary)
		if err != nil || salary.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	emp := &entity.Employee{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Email:       in.Email,
		Department:  in.Department,
		Designation: in.Designation,
		JoiningDate: joining,
		Salary:      salary,
		Phone:       in.Phone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if user, _ := uc.userRepo.GetByEmail(in.Email); user != nil {
		emp.UserID = user.ID
		user.EmployeeID = emp.ID
		user.UpdatedAt = now
		if err := uc.userRepo.Update(user); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.Create(emp); err != nil {
		return nil, err
	}
	return entityToEmployeeResponse(emp), nil
}

// GetByID obtiene un perfil por ID. Devuelve nil si no existe.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, nil
	}
	return entityToEmployeeResponse(emp), nil
}

// List lista perfiles con paginación.
func (uc *EmployeeUseCase) List(limit, offset int) (*dto.EmployeeListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *entityToEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza campos del perfil. Solo los campos presentes se modifican.
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	if in.Name != nil {
		emp.Name = *in.Name
	}
	if in.Department != nil {
		emp.Department = *in.Department
	}
	if in.Designation != nil {
		emp.Designation = *in.Designation
	}
	if in.Salary != nil {
		salary, err := decimal.NewFromString(*in.Salary)
		if err != nil || salary.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		emp.Salary = salary
	}
	if in.Phone != nil {
		emp.Phone = *in.Phone
	}
	emp.UpdatedAt = time.Now()
	if err := uc.repo.Update(emp); err != nil {
		return nil, err
	}
	return entityToEmployeeResponse(emp), nil
}

// Delete elimina el perfil. Los registros históricos de asistencia y permisos
// conservan el snapshot denormalizado y no se eliminan en cascada.
func (uc *EmployeeUseCase) Delete(id string) error {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if emp == nil {
		return domain.ErrEmployeeNotFound
	}
	if emp.UserID != "" {
		if user, _ := uc.userRepo.GetByID(emp.UserID); user != nil {
			user.EmployeeID = ""
			user.UpdatedAt = time.Now()
			if err := uc.userRepo.Update(user); err != nil {
				return err
			}
		}
	}
	return uc.repo.Delete(id)
}

func entityToEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		Name:        e.Name,
		Email:       e.Email,
		Department:  e.Department,
		Designation: e.Designation,
		JoiningDate: e.JoiningDate.Format(dateLayout),
		Salary:      e.Salary.String(),
		Phone:       e.Phone,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
