package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]entity.User, error)
	Update(user *entity.User) error
	Delete(id int64) error
	Count() (int, error)
}
