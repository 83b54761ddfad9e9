package repository

import "github.com/jhoicas/stockit-api/internal/domain/entity"

// StockPositionRepository define el puerto para las posiciones de stock
// (producto, empresa). Get* retornan nil sin error cuando la fila no existe.
// Usado dentro de transacciones para mantener consistente el par
// posición + movimiento.
type StockPositionRepository interface {
	Get(productID, companyID int64) (*entity.StockPosition, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE) y así
	// serializar mutaciones concurrentes sobre el mismo par.
	GetForUpdate(productID, companyID int64) (*entity.StockPosition, error)
	ListByCompany(companyID int64) ([]*entity.StockPositionView, error)
	GetView(productID, companyID int64) (*entity.StockPositionView, error)
	Create(position *entity.StockPosition) error
	Update(position *entity.StockPosition) error
	Delete(productID, companyID int64) error
}
