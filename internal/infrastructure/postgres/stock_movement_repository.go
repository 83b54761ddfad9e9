package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockit-api/internal/domain/entity"
	"github.com/jhoicas/stockit-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del puerto StockMovementRepository sobre
// PostgreSQL. La tabla es append-only desde la aplicación: solo INSERT y SELECT.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento y asigna ID y fecha generados por la base.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (product_id, company_id, user_id, quantity, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, date`
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, movement.CompanyID, movement.UserID, movement.Quantity, movement.Type,
	).Scan(&movement.ID, &movement.Date)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByCompany retorna los movimientos de una empresa, más reciente primero.
// LEFT JOIN a productos y usuarios: el historial sobrevive a sus borrados y
// los campos de display llegan en NULL.
func (r *StockMovementRepo) ListByCompany(companyID int64) ([]*entity.StockMovementView, error) {
	query := `
		SELECT m.id, m.product_id, m.company_id, m.user_id, m.quantity, m.date, m.type,
		       p.name, p.ean, p.reference,
		       u.firstname, u.lastname
		FROM stock_movements m
		LEFT JOIN products p ON p.id = m.product_id
		LEFT JOIN users u ON u.id = m.user_id
		WHERE m.company_id = $1
		ORDER BY m.date DESC, m.id DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var views []*entity.StockMovementView
	for rows.Next() {
		var v entity.StockMovementView
		if err := rows.Scan(
			&v.ID, &v.ProductID, &v.CompanyID, &v.UserID, &v.Quantity, &v.Date, &v.Type,
			&v.ProductName, &v.ProductEAN, &v.ProductReference,
			&v.UserFirstname, &v.UserLastname,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		views = append(views, &v)
	}
	return views, rows.Err()
}
