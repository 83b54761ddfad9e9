package entity

// Product representa un producto del catálogo. La identidad (ID) es inmutable;
// los campos descriptivos se pueden editar. El stock por empresa vive en StockPosition.
type Product struct {
	ID          int64
	Name        string
	EAN         string // código de barras, opcional
	Reference   string // referencia interna, opcional
	Description string
	Image       string // URL de imagen, opcional
}
