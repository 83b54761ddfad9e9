package entity

// Company representa una organización/tenant del sistema.
// Posee cero o más usuarios y cero o más posiciones de stock.
type Company struct {
	ID   int64
	Name string
}
