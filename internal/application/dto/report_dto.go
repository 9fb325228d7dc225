package dto

import "github.com/tu-usuario/ventas-api/internal/domain/report"

// Formatos de reporte soportados.
const (
	ReportFormatJSON = "json"
	ReportFormatPDF  = "pdf"
)

// GenerateReportRequest entrada para generar un reporte.
type GenerateReportRequest struct {
	Format    string `json:"format" validate:"required,oneof=json pdf"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	ProductID *int64 `json:"productId"`
}

// Report unión etiquetada de las variantes de reporte: cada variante lleva
// solo sus campos válidos, discriminadas por el campo format.
type Report interface {
	ReportFormat() string
}

// JSONReport variante JSON: el documento se emite tal cual.
type JSONReport struct {
	Format  string          `json:"format"`
	Content report.Document `json:"content"`
}

// ReportFormat implementa Report.
func (JSONReport) ReportFormat() string { return ReportFormatJSON }

// PDFMetadata metadatos del documento PDF generado.
type PDFMetadata struct {
	Title        string `json:"title"`
	Author       string `json:"author"`
	CreationDate string `json:"creationDate"`
}

// PDFReport variante PDF: binario más tipo de contenido, nombre de archivo y metadatos.
type PDFReport struct {
	Format      string      `json:"format"`
	Content     []byte      `json:"-"`
	ContentType string      `json:"contentType"`
	Filename    string      `json:"filename"`
	Metadata    PDFMetadata `json:"metadata"`
}

// ReportFormat implementa Report.
func (PDFReport) ReportFormat() string { return ReportFormatPDF }
