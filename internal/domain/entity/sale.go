package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta: un producto, un usuario, cantidad y precio unitario.
// ProductName y UserName se resuelven con JOIN al listar; quedan vacíos si la
// referencia ya no existe (se renderizan como "Unknown" aguas abajo).
type Sale struct {
	ID        int64
	ProductID int64
	UserID    int64
	Quantity  int
	UnitPrice decimal.Decimal
	Date      time.Time

	ProductName string
	UserName    string
}

// Total devuelve el importe de la línea (cantidad × precio unitario).
func (s Sale) Total() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
