package stock

import (
	"github.com/jhoicas/stockit-api/internal/application/dto"
	"github.com/jhoicas/stockit-api/internal/domain/entity"
	"github.com/jhoicas/stockit-api/internal/domain/repository"
)

// MovementUseCase consulta del libro de movimientos (solo gerentes).
type MovementUseCase struct {
	movements repository.StockMovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(movements repository.StockMovementRepository) *MovementUseCase {
	return &MovementUseCase{movements: movements}
}

// ListByCompany retorna los movimientos de la empresa, más reciente primero.
// Producto o usuario borrados llegan con campos de display en nil.
func (uc *MovementUseCase) ListByCompany(companyID int64) ([]dto.MovementResponse, error) {
	views, err := uc.movements.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(views))
	for _, v := range views {
		items = append(items, toMovementResponse(v))
	}
	return items, nil
}

func toMovementResponse(v *entity.StockMovementView) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        v.ID,
		ProductID: v.ProductID,
		CompanyID: v.CompanyID,
		UserID:    v.UserID,
		Quantity:  v.Quantity,
		Date:      v.Date,
		Type:      v.Type,
		Product: &dto.MovementProductInfo{
			Name:      v.ProductName,
			EAN:       v.ProductEAN,
			Reference: v.ProductReference,
		},
		User: &dto.MovementUserInfo{
			Firstname: v.UserFirstname,
			Lastname:  v.UserLastname,
		},
	}
}
