package usecase

import (
	"context"

	"github.com/tu-usuario/ventas-api/internal/domain/report"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// Lo usa la eliminación en cascada de usuarios (ventas + usuario, atómico).
type TxRunner interface {
	Run(ctx context.Context, fn func(saleRepo repository.SaleRepository, userRepo repository.UserRepository) error) error
}

// ReportPDFGenerator renderiza el documento de reporte a PDF.
// El layout y la paginación son responsabilidad del renderizador.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, doc report.Document) ([]byte, error)
}
