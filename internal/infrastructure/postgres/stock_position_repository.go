package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockit-api/internal/domain"
	"github.com/jhoicas/stockit-api/internal/domain/entity"
	"github.com/jhoicas/stockit-api/internal/domain/repository"
)

var _ repository.StockPositionRepository = (*StockPositionRepo)(nil)

// StockPositionRepo implementación del puerto StockPositionRepository sobre
// PostgreSQL. Las mutaciones se usan dentro de transacciones (vía TxRunner)
// para mantener consistente el par posición + movimiento.
type StockPositionRepo struct {
	q Querier
}

// NewStockPositionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockPositionRepository(q Querier) *StockPositionRepo {
	return &StockPositionRepo{q: q}
}

const positionColumns = `product_id, company_id, amount, price, min_stock`

// Get obtiene la posición (producto, empresa). Retorna nil sin error si no existe.
func (r *StockPositionRepo) Get(productID, companyID int64) (*entity.StockPosition, error) {
	return r.get(productID, companyID, "")
}

// GetForUpdate obtiene la posición bloqueando la fila (SELECT FOR UPDATE).
// Mutaciones concurrentes sobre el mismo par esperan el lock y se serializan.
func (r *StockPositionRepo) GetForUpdate(productID, companyID int64) (*entity.StockPosition, error) {
	return r.get(productID, companyID, " FOR UPDATE")
}

func (r *StockPositionRepo) get(productID, companyID int64, suffix string) (*entity.StockPosition, error) {
	query := `SELECT ` + positionColumns + ` FROM stock_positions WHERE product_id = $1 AND company_id = $2` + suffix
	var p entity.StockPosition
	err := r.q.QueryRow(context.Background(), query, productID, companyID).Scan(
		&p.ProductID, &p.CompanyID, &p.Amount, &p.Price, &p.MinStock,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock position: %w", err)
	}
	return &p, nil
}

// ListByCompany lista las posiciones de una empresa con su producto, ordenadas
// por nombre de producto.
func (r *StockPositionRepo) ListByCompany(companyID int64) ([]*entity.StockPositionView, error) {
	query := `
		SELECT sp.product_id, sp.company_id, sp.amount, sp.price, sp.min_stock,
		       p.id, p.name, p.ean, p.reference, p.description, p.image
		FROM stock_positions sp
		JOIN products p ON p.id = sp.product_id
		WHERE sp.company_id = $1
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list stock positions: %w", err)
	}
	defer rows.Close()
	var views []*entity.StockPositionView
	for rows.Next() {
		var v entity.StockPositionView
		if err := rows.Scan(
			&v.ProductID, &v.CompanyID, &v.Amount, &v.Price, &v.MinStock,
			&v.Product.ID, &v.Product.Name, &v.Product.EAN, &v.Product.Reference,
			&v.Product.Description, &v.Product.Image,
		); err != nil {
			return nil, fmt.Errorf("scan stock position: %w", err)
		}
		views = append(views, &v)
	}
	return views, rows.Err()
}

// GetView obtiene la posición con su producto. Retorna nil sin error si no existe.
func (r *StockPositionRepo) GetView(productID, companyID int64) (*entity.StockPositionView, error) {
	query := `
		SELECT sp.product_id, sp.company_id, sp.amount, sp.price, sp.min_stock,
		       p.id, p.name, p.ean, p.reference, p.description, p.image
		FROM stock_positions sp
		JOIN products p ON p.id = sp.product_id
		WHERE sp.product_id = $1 AND sp.company_id = $2`
	var v entity.StockPositionView
	err := r.q.QueryRow(context.Background(), query, productID, companyID).Scan(
		&v.ProductID, &v.CompanyID, &v.Amount, &v.Price, &v.MinStock,
		&v.Product.ID, &v.Product.Name, &v.Product.EAN, &v.Product.Reference,
		&v.Product.Description, &v.Product.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock position view: %w", err)
	}
	return &v, nil
}

// Create persiste una nueva posición. PK compuesta (product_id, company_id):
// duplicado retorna ErrDuplicate.
func (r *StockPositionRepo) Create(position *entity.StockPosition) error {
	query := `
		INSERT INTO stock_positions (product_id, company_id, amount, price, min_stock)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		position.ProductID, position.CompanyID, position.Amount, position.Price, position.MinStock,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock position: %w", err)
	}
	return nil
}

// Update actualiza cantidad, precio y stock mínimo de la posición.
func (r *StockPositionRepo) Update(position *entity.StockPosition) error {
	query := `
		UPDATE stock_positions SET amount = $3, price = $4, min_stock = $5
		WHERE product_id = $1 AND company_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		position.ProductID, position.CompanyID, position.Amount, position.Price, position.MinStock,
	)
	if err != nil {
		return fmt.Errorf("update stock position: %w", err)
	}
	return nil
}

// Delete elimina la posición. El movimiento DELETE lo registra el caso de uso
// en la misma transacción, antes de llamar aquí.
func (r *StockPositionRepo) Delete(productID, companyID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stock_positions WHERE product_id = $1 AND company_id = $2`,
		productID, companyID,
	)
	if err != nil {
		return fmt.Errorf("delete stock position: %w", err)
	}
	return nil
}
