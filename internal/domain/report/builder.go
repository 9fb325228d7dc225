package report

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

// Sentinelas para campos de filtro ausentes y mensajes de estado del reporte.
const (
	SentinelNoStartDate = "No start date specified"
	SentinelNoEndDate   = "No end date specified"
	SentinelAllProducts = "All products"

	MessageSuccess = "Report generated successfully"
	MessageNoData  = "No data found for the specified criteria"
)

// Input filtros tal como los envió el cliente: las fechas se echan de vuelta
// en el documento con el texto original (o la sentinela si faltan).
type Input struct {
	StartDate string
	EndDate   string
	ProductID *int64
}

// DocumentFilters filtros efectivos del reporte, con sentinelas aplicadas.
type DocumentFilters struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	ProductID string `json:"productId"`
}

// Summary resumen del reporte. TotalItems y AverageOrderValue salen del
// subconjunto filtrado; TotalSales es el total global (ver Metrics).
type Summary struct {
	TotalSales        decimal.Decimal `json:"totalSales"`
	TotalItems        int             `json:"totalItems"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
}

// DetailRow una fila de detalle por venta filtrada.
type DetailRow struct {
	ID        int64           `json:"id"`
	Date      time.Time       `json:"date"`
	Product   string          `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

// Document representación normalizada del reporte, independiente del formato.
type Document struct {
	ID          string          `json:"reportId"`
	GeneratedAt time.Time       `json:"generatedAt"`
	Filters     DocumentFilters `json:"filters"`
	HasData     bool            `json:"hasData"`
	Summary     Summary         `json:"summary"`
	Message     string          `json:"message"`
	Details     []DetailRow     `json:"details"`
}

// Build arma el documento a partir de las ventas ya filtradas y las métricas
// globales. No falla: una venta cuyo producto fue eliminado se renderiza con
// el placeholder en lugar de abortar el reporte completo.
func Build(filtered []entity.Sale, m Metrics, in Input, id string, now time.Time) Document {
	hasData := len(filtered) > 0

	doc := Document{
		ID:          id,
		GeneratedAt: now,
		Filters:     buildFilters(in),
		HasData:     hasData,
		Message:     MessageNoData,
		Summary: Summary{
			TotalSales:        decimal.Zero,
			TotalItems:        0,
			AverageOrderValue: decimal.Zero,
		},
		Details: make([]DetailRow, 0, len(filtered)),
	}

	if hasData {
		doc.Message = MessageSuccess
		totalItems := 0
		for _, s := range filtered {
			totalItems += s.Quantity
		}
		doc.Summary.TotalSales = m.TotalSales
		doc.Summary.TotalItems = totalItems
		doc.Summary.AverageOrderValue = m.TotalSales.DivRound(decimal.NewFromInt(int64(len(filtered))), 2)
	}

	for _, s := range filtered {
		pname := s.ProductName
		if pname == "" {
			pname = UnknownProduct
		}
		doc.Details = append(doc.Details, DetailRow{
			ID:        s.ID,
			Date:      s.Date,
			Product:   pname,
			Quantity:  s.Quantity,
			UnitPrice: s.UnitPrice,
			Total:     s.Total(),
		})
	}

	return doc
}

func buildFilters(in Input) DocumentFilters {
	f := DocumentFilters{
		StartDate: SentinelNoStartDate,
		EndDate:   SentinelNoEndDate,
		ProductID: SentinelAllProducts,
	}
	if in.StartDate != "" {
		f.StartDate = in.StartDate
	}
	if in.EndDate != "" {
		f.EndDate = in.EndDate
	}
	if in.ProductID != nil {
		f.ProductID = strconv.FormatInt(*in.ProductID, 10)
	}
	return f
}
