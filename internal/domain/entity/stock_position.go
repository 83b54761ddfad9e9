package entity

import "github.com/shopspring/decimal"

// StockPosition representa el stock actual de un producto en una empresa.
// Clave compuesta (ProductID, CompanyID): a lo sumo una fila viva por par.
// Amount nunca es negativo; toda mutación pasa por el motor de stock.
type StockPosition struct {
	ProductID int64
	CompanyID int64
	Amount    int64
	Price     *decimal.Decimal // precio de venta, opcional
	MinStock  int64
}

// StockPositionView es el modelo de lectura de una posición con los datos del
// producto asociado (para listados y etiquetas QR).
type StockPositionView struct {
	StockPosition
	Product Product
}
