package repository

import "github.com/jhoicas/stockit-api/internal/domain/entity"

// StockMovementRepository define el puerto del libro de movimientos.
// El libro es append-only: no expone update ni delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListByCompany retorna los movimientos de una empresa ordenados por fecha
	// descendente, con los campos de display de producto y usuario.
	ListByCompany(companyID int64) ([]*entity.StockMovementView, error)
}
