package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/report"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// Metadatos fijos del reporte PDF.
const (
	reportTitle  = "Sales Report"
	reportAuthor = "Sales Management System"
)

// ReportUseCase genera el reporte de ventas en el formato pedido.
// Flujo: filtrar ventas -> agregar métricas sobre el conjunto completo ->
// armar el documento -> renderizar (JSON o PDF).
type ReportUseCase struct {
	saleRepo repository.SaleRepository
	pdfGen   ReportPDFGenerator
	now      func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(saleRepo repository.SaleRepository, pdfGen ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{saleRepo: saleRepo, pdfGen: pdfGen, now: time.Now}
}

// Generate produce el reporte: dto.JSONReport o dto.PDFReport según el formato.
// Formato desconocido o fecha malformada -> domain.ErrInvalidInput.
func (uc *ReportUseCase) Generate(ctx context.Context, in dto.GenerateReportRequest) (dto.Report, error) {
	if in.Format != dto.ReportFormatJSON && in.Format != dto.ReportFormatPDF {
		return nil, domain.ErrInvalidInput
	}
	filters, err := parseFilters(in.StartDate, in.EndDate, in.ProductID, nil)
	if err != nil {
		return nil, err
	}

	sales, err := uc.saleRepo.ListAll()
	if err != nil {
		return nil, err
	}
	filtered := report.Filter(sales, filters)
	// Métricas sobre TODAS las ventas, no el subconjunto filtrado (contrato
	// heredado, ver DESIGN.md).
	metrics := report.Aggregate(sales)

	now := uc.now()
	doc := report.Build(filtered, metrics, report.Input{
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		ProductID: in.ProductID,
	}, uuid.New().String(), now)

	if in.Format == dto.ReportFormatJSON {
		return dto.JSONReport{Format: dto.ReportFormatJSON, Content: doc}, nil
	}

	content, err := uc.pdfGen.GenerateReportPDF(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("renderizar PDF: %w", err)
	}
	return dto.PDFReport{
		Format:      dto.ReportFormatPDF,
		Content:     content,
		ContentType: "application/pdf",
		Filename:    fmt.Sprintf("Sales_Report_%s.pdf", now.Format("2006-01-02")),
		Metadata: dto.PDFMetadata{
			Title:        reportTitle,
			Author:       reportAuthor,
			CreationDate: doc.GeneratedAt.Format(time.RFC3339),
		},
	}, nil
}
