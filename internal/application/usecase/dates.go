package usecase

import (
	"time"

	"github.com/tu-usuario/ventas-api/internal/domain"
)

// Formatos de fecha aceptados en el borde: RFC 3339 completo o solo fecha.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate valida y parsea una fecha ISO-8601. Cadena vacía -> nil (campo
// ausente). Cadena malformada -> domain.ErrInvalidInput, antes de que el
// valor llegue al evaluador de filtros.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, domain.ErrInvalidInput
}
