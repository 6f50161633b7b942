package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// Estados válidos para User. Los usuarios nunca se borran, solo se desactivan.
const (
	UserStatusActive   = "ACTIVE"
	UserStatusInactive = "INACTIVE"
)

// User representa un empleado o administrador del sistema de reconocimiento.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ADMIN, EMPLOYEE
	Department   string
	Status       string // ACTIVE, INACTIVE
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActiveEmployee indica si el usuario puede ser nominado o votar.
func (u *User) IsActiveEmployee() bool {
	return u.Role == RoleEmployee && u.Status == UserStatusActive
}
