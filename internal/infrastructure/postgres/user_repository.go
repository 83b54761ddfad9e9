package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockit-api/internal/domain"
	"github.com/jhoicas/stockit-api/internal/domain/entity"
	"github.com/jhoicas/stockit-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, company_id, firstname, lastname, email, password_hash, role, last_connection`

// Create persiste un nuevo usuario y asigna el ID generado. El email tiene
// constraint único.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (company_id, firstname, lastname, email, password_hash, role, last_connection)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		user.CompanyID, user.Firstname, user.Lastname, user.Email,
		user.PasswordHash, user.Role, user.LastConnection,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Retorna nil sin error si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	return r.getBy(`id = $1`, id)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.getBy(`email = $1`, email)
}

func (r *UserRepo) getBy(where string, arg any) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.CompanyID, &u.Firstname, &u.Lastname, &u.Email,
		&u.PasswordHash, &u.Role, &u.LastConnection,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// ListByCompany lista los usuarios de una empresa ordenados por apellido.
func (r *UserRepo) ListByCompany(companyID int64) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE company_id = $1 ORDER BY lastname, firstname`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.CompanyID, &u.Firstname, &u.Lastname, &u.Email,
			&u.PasswordHash, &u.Role, &u.LastConnection); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// UpdateLastConnection marca la última conexión del usuario (en login).
func (r *UserRepo) UpdateLastConnection(id int64, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET last_connection = $2 WHERE id = $1`, id, at,
	)
	if err != nil {
		return fmt.Errorf("update last connection: %w", err)
	}
	return nil
}

// Delete elimina un usuario. El libro de movimientos no tiene FK al usuario
// y conserva sus movimientos históricos.
func (r *UserRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
