package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CreatePositionRequest body para POST /api/product-company.
type CreatePositionRequest struct {
	ProductID int64 `json:"productId"`
	Amount    int64 `json:"amount"`
}

// UpdatePositionRequest body para PUT /api/product-company/:productId.
// Campos nil no se tocan; un amount presente se aplica con semántica "set"
// (el delta deriva el movimiento del libro).
type UpdatePositionRequest struct {
	Amount   *int64           `json:"amount"`
	Price    *decimal.Decimal `json:"price"`
	MinStock *int64           `json:"min_stock"`
}

// AmountOperationRequest body para PATCH /api/product-company/:productId/amount.
// Value se deja crudo para distinguir "valor no numérico" (ErrInvalidOperand)
// de un body JSON malformado.
type AmountOperationRequest struct {
	Operation string          `json:"operation"`
	Value     json.RawMessage `json:"value"`
}

// NumericValue interpreta Value como número. Retorna false si falta o no es
// un número JSON.
func (r AmountOperationRequest) NumericValue() (int64, bool) {
	if len(r.Value) == 0 {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(r.Value, &f); err != nil {
		return 0, false
	}
	return int64(f), true
}

// PositionResponse posición de stock, opcionalmente con el producto asociado.
type PositionResponse struct {
	ProductID int64            `json:"productId"`
	CompanyID int64            `json:"companyId"`
	Amount    int64            `json:"amount"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	MinStock  int64            `json:"min_stock"`
	Product   *ProductResponse `json:"product,omitempty"`
}

// AmountOperationResponse respuesta del PATCH de cantidad.
type AmountOperationResponse struct {
	Message        string           `json:"message"`
	ProductCompany PositionResponse `json:"productCompany"`
}
