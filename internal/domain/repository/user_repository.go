package repository

import "github.com/tu-usuario/recognition-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los lookups devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
	ListByRole(role string) ([]*entity.User, error)
	Count() (int, error)
}
