package repository

import (
	"time"

	"github.com/jhoicas/stockit-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	ListByCompany(companyID int64) ([]*entity.User, error)
	UpdateLastConnection(id int64, at time.Time) error
	Delete(id int64) error
}
