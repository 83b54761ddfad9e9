package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste
	MovementTypeDELETE     = "DELETE"     // baja de la posición con stock restante
)

// StockMovement es un registro inmutable del libro de movimientos: un cambio
// efectivo de cantidad. Quantity siempre es la magnitud (positiva); la
// dirección la lleva Type. Solo se crea cuando el delta es distinto de cero,
// y nunca se modifica ni se borra desde la aplicación.
type StockMovement struct {
	ID        int64
	ProductID int64
	CompanyID int64
	UserID    int64
	Quantity  int64
	Date      time.Time
	Type      string
}

// StockMovementView es el modelo de lectura del libro: movimiento más campos
// de display del producto y del usuario. Los joins son LEFT JOIN para que el
// historial sobreviva al borrado de productos o usuarios; por eso los campos
// van como punteros.
type StockMovementView struct {
	StockMovement
	ProductName      *string
	ProductEAN       *string
	ProductReference *string
	UserFirstname    *string
	UserLastname     *string
}
