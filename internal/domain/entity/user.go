package entity

import "time"

// Roles válidos para User.
const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID             int64
	CompanyID      int64
	Firstname      string
	Lastname       string
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Role           string // manager, employee
	LastConnection *time.Time
}
