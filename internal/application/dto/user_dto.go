package dto

import "time"

// RegisterRequest entrada para registro (auth).
type RegisterRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Department string `json:"department" validate:"omitempty,max=200"`
}

// CreateUserRequest entrada para alta de usuario por un admin
// (password en texto, se hashea en el use case).
type CreateUserRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Department string `json:"department" validate:"omitempty,max=200"`
	Role       string `json:"role" validate:"omitempty,oneof=ADMIN EMPLOYEE"`
}

// UpdateUserRequest entrada para edición de usuario por un admin.
type UpdateUserRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"omitempty,max=200"`
	Role       string `json:"role" validate:"required,oneof=ADMIN EMPLOYEE"`
}

// SetUserStatusRequest entrada para activar/desactivar un usuario.
type SetUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
