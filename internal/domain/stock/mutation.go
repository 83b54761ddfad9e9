// Package stock implementa el motor de mutación de stock (servicio de dominio).
// Dado el stock actual y una operación solicitada calcula la nueva cantidad,
// garantiza que nunca sea negativa y deriva a lo sumo un movimiento del libro
// describiendo el cambio efectivo. Es puro: no toca persistencia.
package stock

import (
	"github.com/jhoicas/stockit-api/internal/domain"
	"github.com/jhoicas/stockit-api/internal/domain/entity"
)

// Operaciones soportadas por PATCH /product-company/:productId/amount.
const (
	OpIncrement = "increment"
	OpDecrement = "decrement"
	OpSet       = "set"
)

// Result resultado de una mutación: nueva cantidad, delta con signo y el
// movimiento derivado. MovementType vacío significa que no se registra
// movimiento (delta cero). Quantity siempre es la magnitud del delta.
type Result struct {
	NewAmount    int64
	Delta        int64
	MovementType string
	Quantity     int64
}

// Changed indica si la mutación produjo un cambio efectivo (y por lo tanto
// un movimiento del libro).
func (r Result) Changed() bool { return r.MovementType != "" }

// Apply aplica una operación sobre el stock actual. currentAmount debe ser
// no negativo (invariante de StockPosition). Operación desconocida retorna
// ErrInvalidOperation sin mutar nada.
func Apply(currentAmount int64, operation string, value int64) (Result, error) {
	switch operation {
	case OpIncrement:
		return Increment(currentAmount, value), nil
	case OpDecrement:
		return Decrement(currentAmount, value), nil
	case OpSet:
		return Set(currentAmount, value), nil
	default:
		return Result{NewAmount: currentAmount}, domain.ErrInvalidOperation
	}
}

// Increment suma value al stock. Solo se registra movimiento IN cuando
// value > 0; con value <= 0 la operación es un no-op (la cantidad no cambia),
// preservando la no-negatividad.
func Increment(currentAmount, value int64) Result {
	if value <= 0 {
		return Result{NewAmount: currentAmount}
	}
	return Result{
		NewAmount:    currentAmount + value,
		Delta:        value,
		MovementType: entity.MovementTypeIN,
		Quantity:     value,
	}
}

// Decrement resta value del stock sin bajar de cero. La cantidad efectiva
// retirada es min(value, currentAmount): el libro registra lo que realmente
// salió, no lo solicitado. Si no sale nada (stock ya en cero, o value <= 0)
// no hay movimiento.
func Decrement(currentAmount, value int64) Result {
	if value <= 0 {
		return Result{NewAmount: currentAmount}
	}
	effective := value
	if effective > currentAmount {
		effective = currentAmount
	}
	if effective == 0 {
		return Result{NewAmount: currentAmount}
	}
	return Result{
		NewAmount:    currentAmount - effective,
		Delta:        -effective,
		MovementType: entity.MovementTypeOUT,
		Quantity:     effective,
	}
}

// Set fija el stock en max(0, value) y deriva el movimiento del delta contra
// el stock actual: IN si sube, OUT si baja, ninguno si queda igual.
func Set(currentAmount, value int64) Result {
	newAmount := value
	if newAmount < 0 {
		newAmount = 0
	}
	delta := newAmount - currentAmount
	res := Result{NewAmount: newAmount, Delta: delta}
	switch {
	case delta > 0:
		res.MovementType = entity.MovementTypeIN
		res.Quantity = delta
	case delta < 0:
		res.MovementType = entity.MovementTypeOUT
		res.Quantity = -delta
	}
	return res
}

// Create deriva el movimiento de alta de una posición: IN por la cantidad
// inicial, solo si es mayor que cero.
func Create(initialAmount int64) Result {
	if initialAmount <= 0 {
		amount := initialAmount
		if amount < 0 {
			amount = 0
		}
		return Result{NewAmount: amount}
	}
	return Result{
		NewAmount:    initialAmount,
		Delta:        initialAmount,
		MovementType: entity.MovementTypeIN,
		Quantity:     initialAmount,
	}
}

// Delete deriva el movimiento de baja de una posición: DELETE por la cantidad
// en mano al momento de borrarla, solo si es mayor que cero.
func Delete(currentAmount int64) Result {
	if currentAmount <= 0 {
		return Result{}
	}
	return Result{
		NewAmount:    0,
		Delta:        -currentAmount,
		MovementType: entity.MovementTypeDELETE,
		Quantity:     currentAmount,
	}
}
