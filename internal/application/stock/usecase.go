// Package stock orquesta las mutaciones de posiciones: cada cambio de
// cantidad pasa por el motor de dominio y, si hubo cambio efectivo, deja su
// movimiento en el libro dentro de la misma transacción.
package stock

import (
	"context"

	"github.com/jhoicas/stockit-api/internal/application/dto"
	"github.com/jhoicas/stockit-api/internal/domain"
	"github.com/jhoicas/stockit-api/internal/domain/entity"
	"github.com/jhoicas/stockit-api/internal/domain/repository"
	stockengine "github.com/jhoicas/stockit-api/internal/domain/stock"
)

// StockUseCase casos de uso de posiciones de stock por empresa.
type StockUseCase struct {
	txRunner    TxRunner
	positions   repository.StockPositionRepository
	productRepo repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner, positions repository.StockPositionRepository, productRepo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{
		txRunner:    txRunner,
		positions:   positions,
		productRepo: productRepo,
	}
}

// ListPositions lista las posiciones de la empresa con su producto asociado.
func (uc *StockUseCase) ListPositions(companyID int64) ([]dto.PositionResponse, error) {
	views, err := uc.positions.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PositionResponse, 0, len(views))
	for _, v := range views {
		items = append(items, toPositionResponse(v))
	}
	return items, nil
}

// GetPosition obtiene la posición (producto, empresa) con su producto.
func (uc *StockUseCase) GetPosition(productID, companyID int64) (*dto.PositionResponse, error) {
	view, err := uc.positions.GetView(productID, companyID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domain.ErrNotFound
	}
	resp := toPositionResponse(view)
	return &resp, nil
}

// CreatePosition crea la posición para un producto del catálogo. Si el stock
// inicial es positivo registra el movimiento de entrada correspondiente.
// Retorna ErrNotFound si el producto no existe y ErrDuplicate si la posición
// ya fue creada.
func (uc *StockUseCase) CreatePosition(ctx context.Context, userID, companyID int64, in dto.CreatePositionRequest) (*dto.PositionResponse, error) {
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	position := &entity.StockPosition{
		ProductID: in.ProductID,
		CompanyID: companyID,
	}
	err = uc.txRunner.Run(ctx, func(positions repository.StockPositionRepository, movements repository.StockMovementRepository) error {
		existing, err := positions.Get(in.ProductID, companyID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		res := stockengine.Create(in.Amount)
		position.Amount = res.NewAmount
		if err := positions.Create(position); err != nil {
			return err
		}
		return uc.record(movements, res, in.ProductID, companyID, userID)
	})
	if err != nil {
		return nil, err
	}
	return &dto.PositionResponse{
		ProductID: position.ProductID,
		CompanyID: position.CompanyID,
		Amount:    position.Amount,
		Price:     position.Price,
		MinStock:  position.MinStock,
	}, nil
}

// UpdatePosition reemplaza los campos presentes del body. Un amount presente
// se aplica con semántica "set": el delta contra el valor actual deriva el
// movimiento (entrada o salida) que queda en el libro.
func (uc *StockUseCase) UpdatePosition(ctx context.Context, userID, productID, companyID int64, in dto.UpdatePositionRequest) (*dto.PositionResponse, error) {
	var updated *entity.StockPosition
	err := uc.txRunner.Run(ctx, func(positions repository.StockPositionRepository, movements repository.StockMovementRepository) error {
		position, err := positions.GetForUpdate(productID, companyID)
		if err != nil {
			return err
		}
		if position == nil {
			return domain.ErrNotFound
		}
		if in.Price != nil {
			position.Price = in.Price
		}
		if in.MinStock != nil {
			position.MinStock = *in.MinStock
		}
		if in.Amount != nil {
			res := stockengine.Set(position.Amount, *in.Amount)
			position.Amount = res.NewAmount
			if err := uc.record(movements, res, productID, companyID, userID); err != nil {
				return err
			}
		}
		if err := positions.Update(position); err != nil {
			return err
		}
		updated = position
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.PositionResponse{
		ProductID: updated.ProductID,
		CompanyID: updated.CompanyID,
		Amount:    updated.Amount,
		Price:     updated.Price,
		MinStock:  updated.MinStock,
	}, nil
}

// ApplyOperation aplica increment/decrement/set sobre la cantidad de la
// posición. La fila se bloquea (FOR UPDATE) durante la transacción, así dos
// mutaciones concurrentes sobre el mismo par se serializan y el libro refleja
// ambas. Operación desconocida retorna ErrInvalidOperation sin mutar nada.
func (uc *StockUseCase) ApplyOperation(ctx context.Context, userID, productID, companyID int64, operation string, value int64) (*dto.PositionResponse, error) {
	var updated *entity.StockPosition
	err := uc.txRunner.Run(ctx, func(positions repository.StockPositionRepository, movements repository.StockMovementRepository) error {
		position, err := positions.GetForUpdate(productID, companyID)
		if err != nil {
			return err
		}
		if position == nil {
			return domain.ErrNotFound
		}
		res, err := stockengine.Apply(position.Amount, operation, value)
		if err != nil {
			return err
		}
		if res.Changed() {
			position.Amount = res.NewAmount
			if err := positions.Update(position); err != nil {
				return err
			}
			if err := uc.record(movements, res, productID, companyID, userID); err != nil {
				return err
			}
		}
		updated = position
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.PositionResponse{
		ProductID: updated.ProductID,
		CompanyID: updated.CompanyID,
		Amount:    updated.Amount,
		Price:     updated.Price,
		MinStock:  updated.MinStock,
	}, nil
}

// DeletePosition elimina la posición dejando antes el movimiento DELETE con
// el stock restante. El libro no se toca: conserva la trazabilidad del par
// eliminado.
func (uc *StockUseCase) DeletePosition(ctx context.Context, userID, productID, companyID int64) error {
	return uc.txRunner.Run(ctx, func(positions repository.StockPositionRepository, movements repository.StockMovementRepository) error {
		position, err := positions.GetForUpdate(productID, companyID)
		if err != nil {
			return err
		}
		if position == nil {
			return domain.ErrNotFound
		}
		res := stockengine.Delete(position.Amount)
		if err := uc.record(movements, res, productID, companyID, userID); err != nil {
			return err
		}
		return positions.Delete(productID, companyID)
	})
}

// record persiste el movimiento derivado de una mutación, si lo hubo.
func (uc *StockUseCase) record(movements repository.StockMovementRepository, res stockengine.Result, productID, companyID, userID int64) error {
	if res.MovementType == "" {
		return nil
	}
	return movements.Create(&entity.StockMovement{
		ProductID: productID,
		CompanyID: companyID,
		UserID:    userID,
		Quantity:  res.Quantity,
		Type:      res.MovementType,
	})
}

func toPositionResponse(v *entity.StockPositionView) dto.PositionResponse {
	resp := dto.PositionResponse{
		ProductID: v.ProductID,
		CompanyID: v.CompanyID,
		Amount:    v.Amount,
		Price:     v.Price,
		MinStock:  v.MinStock,
	}
	product := v.Product
	resp.Product = &dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		EAN:         product.EAN,
		Reference:   product.Reference,
		Description: product.Description,
		Image:       product.Image,
	}
	return resp
}
