package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockit-api/internal/application/auth"
	"github.com/jhoicas/stockit-api/internal/application/dto"
	"github.com/jhoicas/stockit-api/internal/domain"
	"github.com/jhoicas/stockit-api/internal/domain/entity"
	"github.com/jhoicas/stockit-api/internal/domain/repository"
)

// UserUseCase gestión de empleados por parte de un gerente.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// AddEmployee crea un usuario con rol employee en la empresa del gerente.
// Devuelve ErrEmailAlreadyExists si el email ya está en uso.
func (uc *UserUseCase) AddEmployee(companyID int64, in dto.AddEmployeeRequest) (*dto.UserResponse, error) {
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		CompanyID:    companyID,
		Firstname:    in.Firstname,
		Lastname:     in.Lastname,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleEmployee,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// ListEmployees lista los usuarios de la empresa del gerente.
func (uc *UserUseCase) ListEmployees(companyID int64) ([]dto.UserResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return items, nil
}

// RemoveEmployee elimina un empleado. Solo procede si el objetivo existe,
// pertenece a la misma empresa que el gerente y tiene rol employee: un
// gerente no puede borrar a otro gerente ni a usuarios de otra empresa.
func (uc *UserUseCase) RemoveEmployee(companyID, targetID int64) error {
	target, err := uc.repo.GetByID(targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrUserNotFound
	}
	if target.CompanyID != companyID {
		return domain.ErrForbidden
	}
	if target.Role != entity.RoleEmployee {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(targetID)
}
