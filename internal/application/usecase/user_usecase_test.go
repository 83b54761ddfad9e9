package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockit-api/internal/application/dto"
	"github.com/jhoicas/stockit-api/internal/domain"
	"github.com/jhoicas/stockit-api/internal/domain/entity"
)

// ────────────────────────────────────────────────────────────────────────────
// Fake en memoria
// ────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User), nextID: 1}
}

func (f *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	user.ID = f.nextID
	f.nextID++
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListByCompany(companyID int64) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range f.users {
		if u.CompanyID == companyID {
			list = append(list, u)
		}
	}
	return list, nil
}

func (f *fakeUserRepo) UpdateLastConnection(id int64, at time.Time) error {
	if u, ok := f.users[id]; ok {
		u.LastConnection = &at
	}
	return nil
}

func (f *fakeUserRepo) Delete(id int64) error {
	delete(f.users, id)
	return nil
}

func addEmployeeInput(email string) dto.AddEmployeeRequest {
	return dto.AddEmployeeRequest{Firstname: "Nuevo", Lastname: "Empleado", Email: email, Password: "secreta123"}
}

func seedUser(repo *fakeUserRepo, companyID int64, email, role string) *entity.User {
	u := &entity.User{CompanyID: companyID, Firstname: "Ana", Lastname: "García", Email: email, Role: role}
	_ = repo.Create(u)
	return u
}

// ────────────────────────────────────────────────────────────────────────────
// Tests RemoveEmployee
// ────────────────────────────────────────────────────────────────────────────

func TestRemoveEmployee_EmpleadoDeLaMismaEmpresa_Elimina(t *testing.T) {
	repo := newFakeUserRepo()
	emp := seedUser(repo, 10, "emp@acme.test", entity.RoleEmployee)
	uc := NewUserUseCase(repo)

	err := uc.RemoveEmployee(10, emp.ID)

	require.NoError(t, err)
	got, _ := repo.GetByID(emp.ID)
	assert.Nil(t, got, "el empleado debe quedar eliminado")
}

func TestRemoveEmployee_DeOtraEmpresa_RetornaForbidden(t *testing.T) {
	repo := newFakeUserRepo()
	emp := seedUser(repo, 99, "otra@acme.test", entity.RoleEmployee)
	uc := NewUserUseCase(repo)

	err := uc.RemoveEmployee(10, emp.ID)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	got, _ := repo.GetByID(emp.ID)
	assert.NotNil(t, got, "el usuario de otra empresa no debe tocarse")
}

func TestRemoveEmployee_ObjetivoGerente_RetornaForbidden(t *testing.T) {
	repo := newFakeUserRepo()
	mgr := seedUser(repo, 10, "jefe@acme.test", entity.RoleManager)
	uc := NewUserUseCase(repo)

	err := uc.RemoveEmployee(10, mgr.ID)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRemoveEmployee_Inexistente_RetornaUserNotFound(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo)

	err := uc.RemoveEmployee(10, 42)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ────────────────────────────────────────────────────────────────────────────
// Tests AddEmployee
// ────────────────────────────────────────────────────────────────────────────

func TestAddEmployee_CreaConRolEmployee(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo)

	out, err := uc.AddEmployee(10, addEmployeeInput("nuevo@acme.test"))

	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, out.Role)
	assert.Equal(t, int64(10), out.CompanyID)

	stored, _ := repo.GetByID(out.ID)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "el password nunca se guarda en claro")
}

func TestAddEmployee_EmailDuplicado_RetornaError(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, 10, "dup@acme.test", entity.RoleEmployee)
	uc := NewUserUseCase(repo)

	_, err := uc.AddEmployee(10, addEmployeeInput("dup@acme.test"))

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}
