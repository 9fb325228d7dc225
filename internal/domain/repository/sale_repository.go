package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale (DIP).
// ListAll resuelve los nombres de producto y usuario vía JOIN; el orden de
// retorno es estable (por id ascendente) y es el que heredan los reportes.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id int64) (*entity.Sale, error)
	ListAll() ([]entity.Sale, error)
	Update(sale *entity.Sale) error
	Delete(id int64) error
	// DeleteByUser elimina todas las ventas de un usuario (cascada explícita).
	DeleteByUser(userID int64) (int64, error)
	// CountByProduct respalda la política RESTRICT al eliminar productos.
	CountByProduct(productID int64) (int, error)
}
