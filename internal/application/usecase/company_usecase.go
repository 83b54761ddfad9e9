package usecase

import (
	"github.com/jhoicas/stockit-api/internal/application/dto"
	"github.com/jhoicas/stockit-api/internal/domain"
	"github.com/jhoicas/stockit-api/internal/domain/repository"
)

// CompanyUseCase casos de uso del perfil de empresa (solo gerentes).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(id int64) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.CompanyResponse{ID: company.ID, Name: company.Name}, nil
}

// Update renombra la empresa.
func (uc *CompanyUseCase) Update(id int64, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	company.Name = in.Name
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return &dto.CompanyResponse{ID: company.ID, Name: company.Name}, nil
}
