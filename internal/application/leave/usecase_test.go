package leave_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	appleave "github.com/jhoicas/Empleados-api/internal/application/leave"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeLeaveRepo replica la semántica del update condicional del repositorio
// real: DecidePending solo transiciona filas en estado Pending, protegido por
// mutex para que el test de concurrencia sea significativo.
type fakeLeaveRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.LeaveRequest
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{rows: make(map[string]*entity.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(req *entity.LeaveRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *req
	f.rows[req.ID] = &cp
	return nil
}

func (f *fakeLeaveRepo) GetByID(id string) (*entity.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.rows[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeLeaveRepo) ListAll() ([]*entity.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.LeaveRequest
	for _, r := range f.rows {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByStatus(status string) ([]*entity.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.LeaveRequest
	for _, r := range f.rows {
		if r.Status == status {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByEmployee(employeeID string) ([]*entity.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.LeaveRequest
	for _, r := range f.rows {
		if r.EmployeeID == employeeID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) DecidePending(id, status, approverID string, decidedAt time.Time) (*entity.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[id]
	if !ok || r.Status != entity.LeavePending {
		return nil, nil
	}
	r.Status = status
	r.ApproverID = approverID
	r.DecidedAt = &decidedAt
	cp := *r
	return &cp, nil
}

// fakeEmployeeRepo solo implementa lo que el caso de uso consulta.
type fakeEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func newFakeEmployeeRepo(emps ...*entity.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]*entity.Employee)}
	for _, e := range emps {
		f.employees[e.ID] = e
	}
	return f
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
func (f *fakeEmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}
func (f *fakeEmployeeRepo) Delete(id string) error { delete(f.employees, id); return nil }

// fakeMailer registra los correos enviados.
type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeMailer) Send(_ context.Context, to, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	return nil
}

const empID = "11111111-1111-1111-1111-111111111111"

func newUseCase() (*appleave.LeaveUseCase, *fakeLeaveRepo, *fakeMailer) {
	repo := newFakeLeaveRepo()
	mailer := &fakeMailer{}
	emps := newFakeEmployeeRepo(&entity.Employee{
		ID:         empID,
		Name:       "Carolina Pérez",
		Email:      "carolina@empresa.local",
		Department: "Ingeniería",
	})
	return appleave.NewLeaveUseCase(repo, emps, mailer), repo, mailer
}

// ──────────────────────────────────────────────────────────────────────────────
// FileRequest
// ──────────────────────────────────────────────────────────────────────────────

func TestFileRequest_DiasInclusivos(t *testing.T) {
	uc, _, _ := newUseCase()

	resp, err := uc.FileRequest(dto.FileLeaveRequest{
		EmployeeID: empID,
		LeaveType:  entity.LeaveAnnual,
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-03",
		Reason:     "vacaciones",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Days, "del 1 al 3 inclusive son 3 días")
	assert.Equal(t, entity.LeavePending, resp.Status)
	assert.Equal(t, "Carolina Pérez", resp.EmployeeName,
		"el nombre se toma del perfil del empleado")
	assert.Equal(t, "Ingeniería", resp.Department)
}

func TestFileRequest_UnDia(t *testing.T) {
	uc, _, _ := newUseCase()

	resp, err := uc.FileRequest(dto.FileLeaveRequest{
		EmployeeID: empID,
		LeaveType:  entity.LeaveSick,
		StartDate:  "2024-02-15",
		EndDate:    "2024-02-15",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Days)
}

func TestFileRequest_RangoInvertido_NoEscribe(t *testing.T) {
	uc, repo, _ := newUseCase()

	_, err := uc.FileRequest(dto.FileLeaveRequest{
		EmployeeID: empID,
		LeaveType:  entity.LeaveAnnual,
		StartDate:  "2024-03-10",
		EndDate:    "2024-03-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	all, _ := repo.ListAll()
	assert.Empty(t, all, "un rango inválido no debe dejar ninguna fila")
}

func TestFileRequest_EmpleadoInexistente(t *testing.T) {
	uc, repo, _ := newUseCase()

	_, err := uc.FileRequest(dto.FileLeaveRequest{
		EmployeeID: "99999999-9999-9999-9999-999999999999",
		LeaveType:  entity.LeaveAnnual,
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-02",
	})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	all, _ := repo.ListAll()
	assert.Empty(t, all)
}

func TestFileRequest_TipoInvalido(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.FileRequest(dto.FileLeaveRequest{
		EmployeeID: empID,
		LeaveType:  "Sabatical",
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-02",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Dos solicitudes idénticas: ambas se aceptan, no hay deduplicación.
func TestFileRequest_SinDeduplicacion(t *testing.T) {
	uc, repo, _ := newUseCase()

	in := dto.FileLeaveRequest{
		EmployeeID: empID,
		LeaveType:  entity.LeaveAnnual,
		StartDate:  "2024-05-01",
		EndDate:    "2024-05-03",
	}
	first, err := uc.FileRequest(in)
	require.NoError(t, err)
	second, err := uc.FileRequest(in)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	all, _ := repo.ListAll()
	assert.Len(t, all, 2, "solicitudes idénticas generan filas independientes")
}

// ──────────────────────────────────────────────────────────────────────────────
// Decide
// ──────────────────────────────────────────────────────────────────────────────

const approverID = "22222222-2222-2222-2222-222222222222"

func fileOne(t *testing.T, uc *appleave.LeaveUseCase) string {
	t.Helper()
	resp, err := uc.FileRequest(dto.FileLeaveRequest{
		EmployeeID: empID,
		LeaveType:  entity.LeaveAnnual,
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-05",
	})
	require.NoError(t, err)
	return resp.ID
}

func TestDecide_Aprueba(t *testing.T) {
	uc, _, mailer := newUseCase()
	id := fileOne(t, uc)

	resp, err := uc.Decide(context.Background(), id, entity.LeaveApproved, approverID)
	require.NoError(t, err)

	assert.Equal(t, entity.LeaveApproved, resp.Status)
	assert.Equal(t, approverID, resp.ApproverID)
	require.NotNil(t, resp.DecidedAt)
	assert.Equal(t, []string{"carolina@empresa.local"}, mailer.sent,
		"la decisión debe notificar al empleado por correo")
}

func TestDecide_EstadoInvalido(t *testing.T) {
	uc, _, _ := newUseCase()
	id := fileOne(t, uc)

	_, err := uc.Decide(context.Background(), id, "Cancelled", approverID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecide_NoExiste(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.Decide(context.Background(), "33333333-3333-3333-3333-333333333333", entity.LeaveApproved, approverID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Una solicitud ya decidida no admite una segunda decisión: el estado
// persistido no cambia y la segunda llamada recibe ErrAlreadyDecided.
func TestDecide_YaDecidida(t *testing.T) {
	uc, repo, _ := newUseCase()
	id := fileOne(t, uc)

	_, err := uc.Decide(context.Background(), id, entity.LeaveApproved, approverID)
	require.NoError(t, err)

	_, err = uc.Decide(context.Background(), id, entity.LeaveRejected, approverID)
	assert.ErrorIs(t, err, domain.ErrAlreadyDecided)

	stored, _ := repo.GetByID(id)
	assert.Equal(t, entity.LeaveApproved, stored.Status,
		"la segunda decisión no debe pisar la primera")
}

// Decisiones concurrentes sobre la misma solicitud: exactamente una gana,
// el resto recibe ErrAlreadyDecided y nunca aparece un tercer estado.
func TestDecide_ConcurrenciaUnSoloGanador(t *testing.T) {
	uc, repo, _ := newUseCase()
	id := fileOne(t, uc)

	const n = 8
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status := entity.LeaveApproved
			if i%2 == 1 {
				status = entity.LeaveRejected
			}
			_, errs[i] = uc.Decide(context.Background(), id, status, approverID)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, domain.ErrAlreadyDecided)
		}
	}
	assert.Equal(t, 1, winners, "exactamente una decisión concurrente debe ganar")

	stored, _ := repo.GetByID(id)
	assert.Contains(t, []string{entity.LeaveApproved, entity.LeaveRejected}, stored.Status,
		"el estado final debe ser uno de los dos terminales, nunca un tercero")
}
