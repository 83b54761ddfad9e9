package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockit-api/internal/domain"
	"github.com/jhoicas/stockit-api/internal/domain/entity"
	"github.com/jhoicas/stockit-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Increment
// ──────────────────────────────────────────────────────────────────────────────

func TestIncrement_SumaYRegistraEntrada(t *testing.T) {
	res := stock.Increment(10, 5)

	assert.Equal(t, int64(15), res.NewAmount)
	assert.Equal(t, int64(5), res.Delta)
	assert.Equal(t, entity.MovementTypeIN, res.MovementType)
	assert.Equal(t, int64(5), res.Quantity, "la cantidad del movimiento debe ser el valor sumado")
	assert.True(t, res.Changed())
}

func TestIncrement_ValorCero_NoOp(t *testing.T) {
	res := stock.Increment(10, 0)

	assert.Equal(t, int64(10), res.NewAmount, "con valor cero la cantidad no cambia")
	assert.False(t, res.Changed(), "delta cero no genera movimiento")
}

func TestIncrement_ValorNegativo_NoOp(t *testing.T) {
	res := stock.Increment(10, -4)

	assert.Equal(t, int64(10), res.NewAmount)
	assert.False(t, res.Changed())
}

func TestIncrement_DesdeCero(t *testing.T) {
	res := stock.Increment(0, 7)

	assert.Equal(t, int64(7), res.NewAmount)
	assert.Equal(t, entity.MovementTypeIN, res.MovementType)
	assert.Equal(t, int64(7), res.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Decrement
// ──────────────────────────────────────────────────────────────────────────────

func TestDecrement_RestaYRegistraSalida(t *testing.T) {
	res := stock.Decrement(10, 4)

	assert.Equal(t, int64(6), res.NewAmount)
	assert.Equal(t, int64(-4), res.Delta)
	assert.Equal(t, entity.MovementTypeOUT, res.MovementType)
	assert.Equal(t, int64(4), res.Quantity)
}

// Escenario límite: stock 100, se piden 150 → queda 0 y el libro registra
// OUT por 100 (lo efectivamente retirado), no por lo solicitado.
func TestDecrement_MasQueElStock_RecortaACero(t *testing.T) {
	res := stock.Decrement(100, 150)

	assert.Equal(t, int64(0), res.NewAmount)
	assert.Equal(t, entity.MovementTypeOUT, res.MovementType)
	assert.Equal(t, int64(100), res.Quantity,
		"el libro registra la cantidad efectiva, no la solicitada")
}

func TestDecrement_ExactamenteElStock(t *testing.T) {
	res := stock.Decrement(25, 25)

	assert.Equal(t, int64(0), res.NewAmount)
	assert.Equal(t, int64(25), res.Quantity)
}

func TestDecrement_StockEnCero_NoGeneraMovimiento(t *testing.T) {
	res := stock.Decrement(0, 30)

	assert.Equal(t, int64(0), res.NewAmount)
	assert.False(t, res.Changed(), "sin retiro efectivo no hay movimiento")
}

func TestDecrement_ValorCeroONegativo_NoOp(t *testing.T) {
	for _, v := range []int64{0, -5} {
		res := stock.Decrement(10, v)
		assert.Equal(t, int64(10), res.NewAmount)
		assert.False(t, res.Changed())
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Set
// ──────────────────────────────────────────────────────────────────────────────

func TestSet_Sube_RegistraEntradaPorElDelta(t *testing.T) {
	res := stock.Set(10, 25)

	assert.Equal(t, int64(25), res.NewAmount)
	assert.Equal(t, int64(15), res.Delta)
	assert.Equal(t, entity.MovementTypeIN, res.MovementType)
	assert.Equal(t, int64(15), res.Quantity, "la cantidad es el valor absoluto del delta")
}

func TestSet_Baja_RegistraSalidaPorElDelta(t *testing.T) {
	res := stock.Set(25, 10)

	assert.Equal(t, int64(10), res.NewAmount)
	assert.Equal(t, int64(-15), res.Delta)
	assert.Equal(t, entity.MovementTypeOUT, res.MovementType)
	assert.Equal(t, int64(15), res.Quantity)
}

// Escenario límite: set(30, 30) → sin cambio, sin movimiento.
func TestSet_MismoValor_SinMovimiento(t *testing.T) {
	res := stock.Set(30, 30)

	assert.Equal(t, int64(30), res.NewAmount)
	assert.Equal(t, int64(0), res.Delta)
	assert.False(t, res.Changed())
}

func TestSet_ValorNegativo_FijaEnCero(t *testing.T) {
	res := stock.Set(10, -8)

	assert.Equal(t, int64(0), res.NewAmount, "set nunca deja stock negativo")
	assert.Equal(t, int64(-10), res.Delta, "el delta se calcula contra el stock actual")
	assert.Equal(t, entity.MovementTypeOUT, res.MovementType)
	assert.Equal(t, int64(10), res.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Apply
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_OperacionDesconocida_RetornaError(t *testing.T) {
	res, err := stock.Apply(10, "multiply", 3)

	require.ErrorIs(t, err, domain.ErrInvalidOperation)
	assert.Equal(t, int64(10), res.NewAmount, "una operación inválida nunca muta el stock")
	assert.False(t, res.Changed())
}

func TestApply_DespachaCadaOperacion(t *testing.T) {
	inc, err := stock.Apply(10, stock.OpIncrement, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(15), inc.NewAmount)

	dec, err := stock.Apply(10, stock.OpDecrement, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), dec.NewAmount)

	set, err := stock.Apply(10, stock.OpSet, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), set.NewAmount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta y baja de posiciones
// ──────────────────────────────────────────────────────────────────────────────

// Escenario límite: alta con cantidad inicial 50 → movimiento IN por 50.
func TestCreate_ConStockInicial_RegistraEntrada(t *testing.T) {
	res := stock.Create(50)

	assert.Equal(t, int64(50), res.NewAmount)
	assert.Equal(t, entity.MovementTypeIN, res.MovementType)
	assert.Equal(t, int64(50), res.Quantity)
}

func TestCreate_SinStockInicial_SinMovimiento(t *testing.T) {
	res := stock.Create(0)

	assert.Equal(t, int64(0), res.NewAmount)
	assert.False(t, res.Changed())
}

func TestCreate_CantidadNegativa_SeNormalizaACero(t *testing.T) {
	res := stock.Create(-10)

	assert.Equal(t, int64(0), res.NewAmount)
	assert.False(t, res.Changed())
}

// Escenario límite: baja de posición con stock 20 → movimiento DELETE por 20.
func TestDelete_ConStockRestante_RegistraBaja(t *testing.T) {
	res := stock.Delete(20)

	assert.Equal(t, entity.MovementTypeDELETE, res.MovementType)
	assert.Equal(t, int64(20), res.Quantity)
}

func TestDelete_SinStock_SinMovimiento(t *testing.T) {
	res := stock.Delete(0)

	assert.False(t, res.Changed())
}
