package dto

// CreateProductRequest body para POST /api/product. Solo name es obligatorio.
type CreateProductRequest struct {
	Name        string `json:"name"`
	EAN         string `json:"EAN"`
	Reference   string `json:"reference"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// UpdateProductRequest body para PUT /api/product/:id. Reemplaza los campos
// descriptivos; la identidad (id) es inmutable.
type UpdateProductRequest struct {
	Name        string `json:"name"`
	EAN         string `json:"EAN"`
	Reference   string `json:"reference"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	EAN         string `json:"EAN,omitempty"`
	Reference   string `json:"reference,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}
