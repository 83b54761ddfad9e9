package stock

import (
	"context"

	"github.com/jhoicas/stockit-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción. Los repositorios que recibe
// fn están ligados a esa transacción: posición y movimiento se confirman o se
// revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(positions repository.StockPositionRepository, movements repository.StockMovementRepository) error) error
}
