package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockit-api/internal/application/dto"
	"github.com/jhoicas/stockit-api/internal/domain"
	"github.com/jhoicas/stockit-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/stockit-api/pkg/jwt"
)

// ────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User), nextID: 1}
}

func (f *fakeUserRepo) Create(user *entity.User) error {
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
	return nil, nil
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

type fakeCompanyRepo struct {
	companies map[int64]*entity.Company
	nextID    int64
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[int64]*entity.Company), nextID: 1}
}

func (f *fakeCompanyRepo) Create(company *entity.Company) error {
	company.ID = f.nextID
	f.nextID++
	cp := *company
	f.companies[company.ID] = &cp
	return nil
}

func (f *fakeCompanyRepo) GetByID(id int64) (*entity.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (f *fakeCompanyRepo) Update(company *entity.Company) error {
	cp := *company
	f.companies[company.ID] = &cp
	return nil
}

const testJWTSecret = "test-secret-key-for-unit-tests"

func newAuthFixture() (*AuthUseCase, *fakeUserRepo, *fakeCompanyRepo) {
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	uc := NewAuthUseCase(users, companies, JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: 60,
		Issuer:     "stockit-test",
	})
	return uc, users, companies
}

func registerInput(email string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Firstname:   "Ana",
		Lastname:    "García",
		Email:       email,
		Password:    "secreta123",
		CompanyName: "Acme SA",
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Tests Register
// ────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaEmpresaYGerente(t *testing.T) {
	uc, users, companies := newAuthFixture()

	out, err := uc.Register(registerInput("ana@acme.test"))

	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, out.Role, "el primer usuario debe ser manager")

	company, _ := companies.GetByID(out.CompanyID)
	require.NotNil(t, company)
	assert.Equal(t, "Acme SA", company.Name)

	stored, _ := users.GetByID(out.ID)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "el password nunca se guarda en claro")
}

func TestRegister_EmailDuplicado_RetornaError(t *testing.T) {
	uc, _, _ := newAuthFixture()
	_, err := uc.Register(registerInput("ana@acme.test"))
	require.NoError(t, err)

	_, err = uc.Register(registerInput("ana@acme.test"))

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ────────────────────────────────────────────────────────────────────────────
// Tests Login
// ────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas_RetornaTokenConClaims(t *testing.T) {
	uc, _, _ := newAuthFixture()
	registered, err := uc.Register(registerInput("ana@acme.test"))
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@acme.test", Password: "secreta123"})

	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, registered.ID, out.User.ID)

	userID, companyID, role, err := pkgjwt.Parse(testJWTSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, registered.CompanyID, companyID)
	assert.Equal(t, entity.RoleManager, role)
}

func TestLogin_PasswordIncorrecto_RetornaUnauthorized(t *testing.T) {
	uc, _, _ := newAuthFixture()
	_, err := uc.Register(registerInput("ana@acme.test"))
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@acme.test", Password: "otra"})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente_RetornaUnauthorized(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@acme.test", Password: "x"})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_ActualizaUltimaConexion(t *testing.T) {
	uc, users, _ := newAuthFixture()
	registered, err := uc.Register(registerInput("ana@acme.test"))
	require.NoError(t, err)

	before := time.Now()
	_, err = uc.Login(dto.LoginRequest{Email: "ana@acme.test", Password: "secreta123"})
	require.NoError(t, err)

	stored, _ := users.GetByID(registered.ID)
	require.NotNil(t, stored.LastConnection)
	assert.False(t, stored.LastConnection.Before(before.Add(-time.Second)),
		"last_connection debe actualizarse en el login")
}
