package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/ports"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
	"github.com/jhoicas/Empleados-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, verificación de email
// y recuperación de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	empRepo  repository.EmployeeRepository
	mailer   ports.Mailer
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, empRepo repository.EmployeeRepository, mailer ports.Mailer, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, empRepo: empRepo, mailer: mailer, jwtCfg: jwtCfg}
}

// RegisterUser crea una cuenta: hashea password con bcrypt, genera un código de
// verificación de 6 dígitos y lo envía por correo. Devuelve ErrEmailAlreadyExists
// si el email ya existe.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	code, err := sixDigitCode()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:               uuid.New().String(),
		Email:            in.Email,
		PasswordHash:     string(hash),
		Name:             name,
		Role:             role,
		Status:           "active",
		Verified:         false,
		VerificationCode: code,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	// El fallo del correo no revierte el alta: el código puede reenviarse.
	_ = uc.mailer.Send(ctx, user.Email, "Verifica tu cuenta",
		fmt.Sprintf("Hola %s, tu código de verificación es: %s", user.Name, code))
	return toUserResponse(user), nil
}

// VerifyEmail marca la cuenta como verificada si el código coincide.
func (uc *AuthUseCase) VerifyEmail(in dto.VerifyEmailRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Verified {
		return toUserResponse(user), nil
	}
	if user.VerificationCode == "" || user.VerificationCode != in.Code {
		return nil, domain.ErrInvalidCode
	}
	user.Verified = true
	user.VerificationCode = ""
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, exige cuenta verificada y activa, genera JWT
// y retorna token + usuario. El claim employee_id permite los chequeos de
// pertenencia en los endpoints de asistencia y permisos.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Verified {
		return nil, domain.ErrNotVerified
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	employeeID := user.EmployeeID
	if employeeID == "" {
		// Perfiles creados por onboarding antes de que exista la cuenta.
		if emp, _ := uc.empRepo.GetByUserID(user.ID); emp != nil {
			employeeID = emp.ID
		}
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, employeeID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	resp.EmployeeID = employeeID
	return &dto.LoginResponse{Token: token, User: *resp}, nil
}

// RequestPasswordReset genera un código de recuperación y lo envía por correo.
// Responde igual exista o no la cuenta para no filtrar emails registrados.
func (uc *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	code, err := sixDigitCode()
	if err != nil {
		return err
	}
	user.ResetCode = code
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return err
	}
	return uc.mailer.Send(ctx, user.Email, "Recuperación de contraseña",
		fmt.Sprintf("Tu código de recuperación es: %s", code))
}

// VerifyResetCode valida el código de recuperación sin consumirlo.
func (uc *AuthUseCase) VerifyResetCode(in dto.VerifyResetCodeRequest) error {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.ResetCode == "" || user.ResetCode != in.Code {
		return domain.ErrInvalidCode
	}
	return nil
}

// ResetPassword cambia la contraseña y consume el código de recuperación.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.ResetCode == "" || user.ResetCode != in.Code {
		return domain.ErrInvalidCode
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.ResetCode = ""
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

// sixDigitCode genera un código numérico de 6 dígitos con crypto/rand.
func sixDigitCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		Status:     u.Status,
		Verified:   u.Verified,
		EmployeeID: u.EmployeeID,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
