// Package report contiene la lógica de reportes de ventas: filtrado por
// ventana de fechas/producto, agregación de métricas y armado del documento
// normalizado previo al renderizado (JSON o PDF).
package report

import (
	"time"

	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

// Filters ventana de filtrado: rango de fechas inclusivo (ambos extremos) más
// producto y usuario opcionales. Un campo nil no restringe.
// Las fechas llegan ya validadas/parseadas en el borde HTTP.
type Filters struct {
	StartDate *time.Time
	EndDate   *time.Time
	ProductID *int64
	UserID    *int64
}

// Empty indica si la ventana no restringe nada.
func (f Filters) Empty() bool {
	return f.StartDate == nil && f.EndDate == nil && f.ProductID == nil && f.UserID == nil
}

// Match indica si una venta cae dentro de la ventana.
func (f Filters) Match(s entity.Sale) bool {
	if f.StartDate != nil && s.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && s.Date.After(*f.EndDate) {
		return false
	}
	if f.ProductID != nil && s.ProductID != *f.ProductID {
		return false
	}
	if f.UserID != nil && s.UserID != *f.UserID {
		return false
	}
	return true
}

// Filter devuelve las ventas que caen dentro de la ventana, preservando el
// orden relativo en que las entrega el almacenamiento (no se reordena).
func Filter(sales []entity.Sale, f Filters) []entity.Sale {
	if f.Empty() {
		return sales
	}
	out := make([]entity.Sale, 0, len(sales))
	for _, s := range sales {
		if f.Match(s) {
			out = append(out, s)
		}
	}
	return out
}
