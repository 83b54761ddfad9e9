package dto

import "time"

// MovementProductInfo campos de display del producto en el libro de movimientos.
// Punteros: el producto puede haber sido borrado después del movimiento.
type MovementProductInfo struct {
	Name      *string `json:"name"`
	EAN       *string `json:"EAN,omitempty"`
	Reference *string `json:"reference,omitempty"`
}

// MovementUserInfo campos de display del usuario que realizó el movimiento.
type MovementUserInfo struct {
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
}

// MovementResponse un registro del libro de movimientos.
type MovementResponse struct {
	ID        int64                `json:"id"`
	ProductID int64                `json:"productId"`
	CompanyID int64                `json:"companyId"`
	UserID    int64                `json:"userId"`
	Quantity  int64                `json:"quantity"`
	Date      time.Time            `json:"date"`
	Type      string               `json:"type"`
	Product   *MovementProductInfo `json:"product,omitempty"`
	User      *MovementUserInfo    `json:"user,omitempty"`
}
