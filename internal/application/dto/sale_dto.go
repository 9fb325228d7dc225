package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta. Date en ISO-8601.
type CreateSaleRequest struct {
	ProductID int64           `json:"productId" validate:"required,gt=0"`
	UserID    int64           `json:"userId" validate:"required,gt=0"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"required"`
	Date      string          `json:"date" validate:"required"`
}

// UpdateSaleRequest entrada para actualizar una venta (campos opcionales).
type UpdateSaleRequest struct {
	ProductID *int64           `json:"productId"`
	UserID    *int64           `json:"userId"`
	Quantity  *int             `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
	Date      *string          `json:"date"`
}

// FilterSalesRequest ventana de filtrado para el listado de ventas.
// Las fechas son strings ISO-8601 (RFC 3339 o YYYY-MM-DD); se validan en el
// borde antes de llegar al evaluador de filtros.
type FilterSalesRequest struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	ProductID *int64 `query:"productId"`
	UserID    *int64 `query:"userId"`
}

// SaleResponse salida de una venta con sus referencias resueltas.
type SaleResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"productId"`
	UserID    int64           `json:"userId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Date      time.Time       `json:"date"`
	Product   string          `json:"product"`
	User      string          `json:"user"`
	Total     decimal.Decimal `json:"total"`
}
