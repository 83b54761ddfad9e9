package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockit-api/internal/application/stock"
	"github.com/jhoicas/stockit-api/internal/domain/entity"
	"github.com/jhoicas/stockit-api/internal/domain/repository"
	apphttp "github.com/jhoicas/stockit-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el handler de stock
// ──────────────────────────────────────────────────────────────────────────────

type memPositionRepo struct {
	position *entity.StockPosition
	product  entity.Product
}

func (m *memPositionRepo) Get(productID, companyID int64) (*entity.StockPosition, error) {
	if m.position == nil || m.position.ProductID != productID || m.position.CompanyID != companyID {
		return nil, nil
	}
	cp := *m.position
	return &cp, nil
}

func (m *memPositionRepo) GetForUpdate(productID, companyID int64) (*entity.StockPosition, error) {
	return m.Get(productID, companyID)
}

func (m *memPositionRepo) ListByCompany(companyID int64) ([]*entity.StockPositionView, error) {
	if m.position == nil || m.position.CompanyID != companyID {
		return nil, nil
	}
	return []*entity.StockPositionView{{StockPosition: *m.position, Product: m.product}}, nil
}

func (m *memPositionRepo) GetView(productID, companyID int64) (*entity.StockPositionView, error) {
	p, err := m.Get(productID, companyID)
	if err != nil || p == nil {
		return nil, err
	}
	return &entity.StockPositionView{StockPosition: *p, Product: m.product}, nil
}

func (m *memPositionRepo) Create(position *entity.StockPosition) error {
	cp := *position
	m.position = &cp
	return nil
}

func (m *memPositionRepo) Update(position *entity.StockPosition) error {
	cp := *position
	m.position = &cp
	return nil
}

func (m *memPositionRepo) Delete(productID, companyID int64) error {
	m.position = nil
	return nil
}

type memMovementRepo struct {
	movements []*entity.StockMovement
}

func (m *memMovementRepo) Create(mov *entity.StockMovement) error {
	cp := *mov
	m.movements = append(m.movements, &cp)
	return nil
}

func (m *memMovementRepo) ListByCompany(companyID int64) ([]*entity.StockMovementView, error) {
	return nil, nil
}

type memProductRepo struct{ product *entity.Product }

func (m *memProductRepo) Create(p *entity.Product) error { return nil }
func (m *memProductRepo) Update(p *entity.Product) error { return nil }
func (m *memProductRepo) Delete(id int64) error { return nil }
func (m *memProductRepo) List() ([]*entity.Product, error) { return nil, nil }
func (m *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	if m.product != nil && m.product.ID == id {
		return m.product, nil
	}
	return nil, nil
}
func (m *memProductRepo) GetByEAN(string) (*entity.Product, error)       { return nil, nil }
func (m *memProductRepo) GetByReference(string) (*entity.Product, error) { return nil, nil }

type memTxRunner struct {
	positions *memPositionRepo
	movements *memMovementRepo
}

func (m *memTxRunner) Run(_ context.Context, fn func(repository.StockPositionRepository, repository.StockMovementRepository) error) error {
	return fn(m.positions, m.movements)
}

// buildStockApp monta la ruta PATCH de cantidad con auth real y repos fake.
func buildStockApp(initialAmount int64) (*fiber.App, *memMovementRepo) {
	product := entity.Product{ID: 1, Name: "tornillos"}
	positions := &memPositionRepo{
		position: &entity.StockPosition{ProductID: 1, CompanyID: testCompanyID, Amount: initialAmount},
		product:  product,
	}
	movements := &memMovementRepo{}
	products := &memProductRepo{product: &product}
	uc := stock.NewStockUseCase(&memTxRunner{positions: positions, movements: movements}, positions, products)
	handler := apphttp.NewStockHandler(uc)

	app := fiber.New()
	app.Patch("/api/product-company/:productId/amount",
		apphttp.AuthMiddleware(testJWTSecret),
		handler.ApplyAmountOperation,
	)
	return app, movements
}

func patchAmount(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/api/product-company/1/amount", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleEmployee))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests PATCH /api/product-company/:productId/amount
// ──────────────────────────────────────────────────────────────────────────────

func TestPatchAmount_Increment_ActualizaYResponde(t *testing.T) {
	app, movements := buildStockApp(20)
	resp := patchAmount(t, app, `{"operation":"increment","value":5}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Message        string `json:"message"`
		ProductCompany struct {
			Amount int64 `json:"amount"`
		} `json:"productCompany"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(25), body.ProductCompany.Amount)
	require.Len(t, movements.movements, 1)
	assert.Equal(t, entity.MovementTypeIN, movements.movements[0].Type)
}

func TestPatchAmount_OperacionDesconocida_Retorna400(t *testing.T) {
	app, movements := buildStockApp(20)
	resp := patchAmount(t, app, `{"operation":"multiply","value":2}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, movements.movements, "una operación inválida no debe dejar movimiento")
}

func TestPatchAmount_ValorNoNumerico_Retorna400(t *testing.T) {
	app, movements := buildStockApp(20)
	resp := patchAmount(t, app, `{"operation":"increment","value":"cinco"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, movements.movements)
}

func TestPatchAmount_SinToken_Retorna401(t *testing.T) {
	app, _ := buildStockApp(20)
	req := httptest.NewRequest(http.MethodPatch, "/api/product-company/1/amount", strings.NewReader(`{"operation":"increment","value":5}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
