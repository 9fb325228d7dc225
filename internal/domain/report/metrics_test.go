package report_test

import (
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Aggregate
// ──────────────────────────────────────────────────────────────────────────────

// Con cero ventas todo queda en cero y las listas vacías (nunca división por
// cero ni valores NaN).
func TestAggregate_SinVentas(t *testing.T) {
	m := report.Aggregate(nil)

	assert.True(t, m.TotalSales.IsZero())
	assert.Empty(t, m.SalesByProduct)
	assert.Empty(t, m.SalesByUser)
	assert.Empty(t, m.MonthlySales)
	assert.NotNil(t, m.SalesByProduct, "las listas deben inicializarse vacías, no nil")
}

// El total global es la suma de cantidad*precio de cada venta.
func TestAggregate_TotalGlobal(t *testing.T) {
	m := report.Aggregate(ventasEjemplo())

	// 5*199.99 + 2*499.99 + 3*199.99 + 1*999.99 + 4*499.99 = 5599.85
	esperado := decimal.RequireFromString("5599.85")
	assert.True(t, esperado.Equal(m.TotalSales),
		"total esperado %s, obtenido %s", esperado, m.TotalSales)
}

// Agrupación por producto: cantidades y montos acumulados por nombre.
func TestAggregate_PorProducto(t *testing.T) {
	m := report.Aggregate(ventasEjemplo())

	require.Len(t, m.SalesByProduct, 3)

	porNombre := map[string]report.ProductSales{}
	for _, p := range m.SalesByProduct {
		porNombre[p.ProductName] = p
	}

	pA := porNombre["Producto A"]
	assert.Equal(t, 8, pA.TotalQuantity, "producto A: 5 + 3 unidades")
	assert.True(t, decimal.RequireFromString("1599.92").Equal(pA.TotalAmount))

	pB := porNombre["Producto B"]
	assert.Equal(t, 6, pB.TotalQuantity)
	assert.True(t, decimal.RequireFromString("2999.94").Equal(pB.TotalAmount))
}

// Agrupación por usuario: TotalSales cuenta ventas (filas), no unidades.
func TestAggregate_PorUsuario(t *testing.T) {
	m := report.Aggregate(ventasEjemplo())

	require.Len(t, m.SalesByUser, 1)
	assert.Equal(t, "Usuario A", m.SalesByUser[0].UserName)
	assert.Equal(t, 5, m.SalesByUser[0].TotalSales, "cuenta de ventas, no de unidades")
	assert.True(t, decimal.RequireFromString("5599.85").Equal(m.SalesByUser[0].TotalAmount))
}

// La serie mensual se agrupa por YYYY-MM y se ordena ascendente.
func TestAggregate_SerieMensualOrdenada(t *testing.T) {
	// Se entregan las ventas en orden inverso para verificar el reordenamiento.
	sales := ventasEjemplo()
	for i, j := 0, len(sales)-1; i < j; i, j = i+1, j-1 {
		sales[i], sales[j] = sales[j], sales[i]
	}

	m := report.Aggregate(sales)

	require.Len(t, m.MonthlySales, 3)
	assert.Equal(t, "2023-01", m.MonthlySales[0].Month)
	assert.Equal(t, "2023-02", m.MonthlySales[1].Month)
	assert.Equal(t, "2023-03", m.MonthlySales[2].Month)
	assert.True(t, sort.SliceIsSorted(m.MonthlySales, func(i, j int) bool {
		return m.MonthlySales[i].Month < m.MonthlySales[j].Month
	}))

	// Enero: 5*199.99 + 2*499.99 = 1999.93
	assert.True(t, decimal.RequireFromString("1999.93").Equal(m.MonthlySales[0].TotalAmount))
}

// Una venta cuyo producto/usuario ya no existe se agrega bajo el placeholder.
func TestAggregate_ReferenciasRotas(t *testing.T) {
	s := venta(1, 1, 1, 2, "10.00", fecha(2023, time.June, 1))
	s.ProductName = ""
	s.UserName = ""

	m := report.Aggregate([]entity.Sale{s})

	require.Len(t, m.SalesByProduct, 1)
	assert.Equal(t, report.UnknownProduct, m.SalesByProduct[0].ProductName)
	require.Len(t, m.SalesByUser, 1)
	assert.Equal(t, report.UnknownUser, m.SalesByUser[0].UserName)
}

// Dos productos homónimos se agregan en un solo grupo: la clave es el nombre
// visible, no el ID.
func TestAggregate_HomonimosSeFusionan(t *testing.T) {
	s1 := venta(1, 1, 1, 1, "10.00", fecha(2023, time.June, 1))
	s2 := venta(2, 2, 1, 2, "20.00", fecha(2023, time.June, 2))
	s1.ProductName = "Duplicado"
	s2.ProductName = "Duplicado"

	m := report.Aggregate([]entity.Sale{s1, s2})

	require.Len(t, m.SalesByProduct, 1)
	assert.Equal(t, 3, m.SalesByProduct[0].TotalQuantity)
	assert.True(t, decimal.RequireFromString("50.00").Equal(m.SalesByProduct[0].TotalAmount))
}
