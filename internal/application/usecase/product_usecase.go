package usecase

import (
	"github.com/jhoicas/stockit-api/internal/application/dto"
	"github.com/jhoicas/stockit-api/internal/domain"
	"github.com/jhoicas/stockit-api/internal/domain/entity"
	"github.com/jhoicas/stockit-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo de productos. El stock por
// empresa no se toca aquí: vive en las posiciones y su motor de mutación.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Name es obligatorio (lo valida el handler).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:        in.Name,
		EAN:         in.EAN,
		Reference:   in.Reference,
		Description: in.Description,
		Image:       in.Image,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Retorna nil, nil si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByEAN busca un producto por código de barras.
func (uc *ProductUseCase) GetByEAN(ean string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByEAN(ean)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByReference busca un producto por referencia interna.
func (uc *ProductUseCase) GetByReference(reference string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByReference(reference)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista el catálogo completo.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update reemplaza los campos descriptivos del producto. Retorna ErrNotFound
// si el producto no existe.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.EAN = in.EAN
	product.Reference = in.Reference
	product.Description = in.Description
	product.Image = in.Image
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto del catálogo. Las posiciones asociadas caen en
// cascada a nivel de base; el libro de movimientos no se toca y conserva
// referencias huérfanas (de ahí los LEFT JOIN de display).
func (uc *ProductUseCase) Delete(id int64) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		EAN:         p.EAN,
		Reference:   p.Reference,
		Description: p.Description,
		Image:       p.Image,
	}
}
