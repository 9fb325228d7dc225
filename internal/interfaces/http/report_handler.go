package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
	"github.com/tu-usuario/ventas-api/internal/domain"
)

// ReportHandler maneja la generación de reportes de ventas (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar reporte de ventas (JSON o PDF)
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Produce      application/pdf
// @Param        body  body  dto.GenerateReportRequest  true  "format (json|pdf), ventana opcional"
// @Success      200   {object}  dto.JSONReport
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/generate [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Format == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format es requerido (json o pdf)"})
	}
	out, err := h.uc.Generate(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format debe ser json o pdf; fechas en ISO-8601"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	switch r := out.(type) {
	case dto.JSONReport:
		return c.JSON(r)
	case dto.PDFReport:
		c.Set(fiber.HeaderContentType, r.ContentType)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+r.Filename+`"`)
		return c.Send(r.Content)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "formato de reporte desconocido"})
	}
}
