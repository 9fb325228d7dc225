package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	List() ([]entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
	Count() (int, error)
}
