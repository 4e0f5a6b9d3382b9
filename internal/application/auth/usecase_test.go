package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Empleados-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail       map[string]*entity.User
	getByEmailErr error // simula una caída del almacén
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.byEmail[u.Email] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	if f.getByEmailErr != nil {
		return nil, f.getByEmailErr
	}
	return f.byEmail[email], nil
}
func (f *fakeUserRepo) Update(u *entity.User) error { f.byEmail[u.Email] = u; return nil }
func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.byEmail {
		out = append(out, u)
	}
	return out, nil
}
func (f *fakeUserRepo) Delete(id string) error {
	for email, u := range f.byEmail {
		if u.ID == id {
			delete(f.byEmail, email)
		}
	}
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func (f *fakeEmployeeRepo) Create(emp *entity.Employee) error { f.employees[emp.ID] = emp; return nil }
func (f *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return f.employees[id], nil
}
func (f *fakeEmployeeRepo) GetByUserID(userID string) (*entity.Employee, error) {
	for _, e := range f.employees {
		if e.UserID == userID {
			return e, nil
		}
	}
	return nil, nil
}
func (f *fakeEmployeeRepo) Exists(id string) (bool, error) {
	_, ok := f.employees[id]
	return ok, nil
}
func (f *fakeEmployeeRepo) Update(emp *entity.Employee) error { f.employees[emp.ID] = emp; return nil }
func (f *fakeEmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) Delete(id string) error {
	delete(f.employees, id)
	return nil
}

// fakeMailer captura el último correo para extraer los códigos enviados.
type fakeMailer struct {
	lastTo   string
	lastBody string
	sent     int
}

func (f *fakeMailer) Send(_ context.Context, to, _, body string) error {
	f.lastTo = to
	f.lastBody = body
	f.sent++
	return nil
}

const testSecret = "auth-test-secret"

func newUseCase() (*auth.AuthUseCase, *fakeUserRepo, *fakeMailer) {
	users := newFakeUserRepo()
	mailer := &fakeMailer{}
	emps := &fakeEmployeeRepo{employees: make(map[string]*entity.Employee)}
	uc := auth.NewAuthUseCase(users, emps, mailer, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "empleados-api-test",
	})
	return uc, users, mailer
}

func register(t *testing.T, uc *auth.AuthUseCase, email, password, role string) *dto.UserResponse {
	t.Helper()
	resp, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    email,
		Password: password,
		Name:     "Test User",
		Role:     role,
	})
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro y verificación
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_EnviaCodigoYQuedaSinVerificar(t *testing.T) {
	uc, users, mailer := newUseCase()

	resp := register(t, uc, "ana@empresa.local", "secreta123", "")

	assert.Equal(t, entity.RoleEmployee, resp.Role, "sin rol explícito se asigna employee")
	assert.False(t, resp.Verified)
	assert.Equal(t, 1, mailer.sent, "el registro debe enviar el código por correo")
	assert.Equal(t, "ana@empresa.local", mailer.lastTo)

	stored, _ := users.GetByEmail("ana@empresa.local")
	require.NotNil(t, stored)
	assert.Len(t, stored.VerificationCode, 6)
	assert.Contains(t, mailer.lastBody, stored.VerificationCode)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "la contraseña nunca se guarda en claro")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _, _ := newUseCase()
	register(t, uc, "ana@empresa.local", "secreta123", "")

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    "ana@empresa.local",
		Password: "otra456",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Una falla del almacén al consultar el email se propaga tal cual, no se
// confunde con un duplicado ni con el error del insert posterior.
func TestRegisterUser_FallaDelAlmacenSePropaga(t *testing.T) {
	uc, users, mailer := newUseCase()
	storeDown := errors.New("conexión rechazada")
	users.getByEmailErr = storeDown

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    "ana@empresa.local",
		Password: "secreta123",
	})
	assert.ErrorIs(t, err, storeDown)
	assert.Zero(t, mailer.sent, "sin registro no se envía correo")
}

func TestRegisterUser_RolInvalido(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    "ana@empresa.local",
		Password: "secreta123",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVerifyEmail_CodigoCorrecto(t *testing.T) {
	uc, users, _ := newUseCase()
	register(t, uc, "ana@empresa.local", "secreta123", "")
	stored, _ := users.GetByEmail("ana@empresa.local")

	resp, err := uc.VerifyEmail(dto.VerifyEmailRequest{
		Email: "ana@empresa.local",
		Code:  stored.VerificationCode,
	})
	require.NoError(t, err)
	assert.True(t, resp.Verified)

	stored, _ = users.GetByEmail("ana@empresa.local")
	assert.Empty(t, stored.VerificationCode, "el código se consume al verificar")
}

func TestVerifyEmail_CodigoIncorrecto(t *testing.T) {
	uc, _, _ := newUseCase()
	register(t, uc, "ana@empresa.local", "secreta123", "")

	_, err := uc.VerifyEmail(dto.VerifyEmailRequest{
		Email: "ana@empresa.local",
		Code:  "000000x",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func verifyUser(t *testing.T, uc *auth.AuthUseCase, users *fakeUserRepo, email string) {
	t.Helper()
	stored, _ := users.GetByEmail(email)
	require.NotNil(t, stored)
	_, err := uc.VerifyEmail(dto.VerifyEmailRequest{Email: email, Code: stored.VerificationCode})
	require.NoError(t, err)
}

func TestLogin_EmiteTokenConClaims(t *testing.T) {
	uc, users, _ := newUseCase()
	register(t, uc, "ana@empresa.local", "secreta123", entity.RoleHRManager)
	verifyUser(t, uc, users, "ana@empresa.local")

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@empresa.local", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, _, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, entity.RoleHRManager, role)
}

func TestLogin_SinVerificar(t *testing.T) {
	uc, _, _ := newUseCase()
	register(t, uc, "ana@empresa.local", "secreta123", "")

	_, err := uc.Login(dto.LoginRequest{Email: "ana@empresa.local", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrNotVerified)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, users, _ := newUseCase()
	register(t, uc, "ana@empresa.local", "secreta123", "")
	verifyUser(t, uc, users, "ana@empresa.local")

	_, err := uc.Login(dto.LoginRequest{Email: "ana@empresa.local", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	uc, users, _ := newUseCase()
	register(t, uc, "ana@empresa.local", "secreta123", "")
	verifyUser(t, uc, users, "ana@empresa.local")

	stored, _ := users.GetByEmail("ana@empresa.local")
	stored.Status = "inactive"

	_, err := uc.Login(dto.LoginRequest{Email: "ana@empresa.local", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recuperación de contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestPasswordReset_NoFiltraEmails(t *testing.T) {
	uc, _, mailer := newUseCase()

	err := uc.RequestPasswordReset(context.Background(), "nadie@empresa.local")
	assert.NoError(t, err, "un email desconocido responde igual que uno conocido")
	assert.Zero(t, mailer.sent)
}

func TestResetPassword_FlujoCompleto(t *testing.T) {
	uc, users, _ := newUseCase()
	register(t, uc, "ana@empresa.local", "secreta123", "")
	verifyUser(t, uc, users, "ana@empresa.local")

	require.NoError(t, uc.RequestPasswordReset(context.Background(), "ana@empresa.local"))
	stored, _ := users.GetByEmail("ana@empresa.local")
	require.Len(t, stored.ResetCode, 6)
	code := stored.ResetCode

	require.NoError(t, uc.VerifyResetCode(dto.VerifyResetCodeRequest{
		Email: "ana@empresa.local", Code: code,
	}))
	require.NoError(t, uc.ResetPassword(dto.ResetPasswordRequest{
		Email: "ana@empresa.local", Code: code, NewPassword: "renovada789",
	}))

	// La contraseña anterior deja de servir, la nueva sí.
	_, err := uc.Login(dto.LoginRequest{Email: "ana@empresa.local", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(dto.LoginRequest{Email: "ana@empresa.local", Password: "renovada789"})
	assert.NoError(t, err)
}

func TestResetPassword_CodigoIncorrecto(t *testing.T) {
	uc, users, _ := newUseCase()
	register(t, uc, "ana@empresa.local", "secreta123", "")
	verifyUser(t, uc, users, "ana@empresa.local")
	require.NoError(t, uc.RequestPasswordReset(context.Background(), "ana@empresa.local"))

	err := uc.ResetPassword(dto.ResetPasswordRequest{
		Email: "ana@empresa.local", Code: "incorrecto", NewPassword: "renovada789",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCode)

	stored, _ := users.GetByEmail("ana@empresa.local")
	assert.NotEmpty(t, stored.ResetCode, "el código no se consume con un intento fallido")
}
