package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockit-api/internal/domain/entity"
	"github.com/jhoicas/stockit-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa y asigna el ID generado.
func (r *CompanyRepo) Create(company *entity.Company) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO companies (name) VALUES ($1) RETURNING id`,
		company.Name,
	).Scan(&company.ID)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID. Retorna nil sin error si no existe.
func (r *CompanyRepo) GetByID(id int64) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM companies WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update actualiza el nombre de la empresa.
func (r *CompanyRepo) Update(company *entity.Company) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE companies SET name = $2 WHERE id = $1`,
		company.ID, company.Name,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}
