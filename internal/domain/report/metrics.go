package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

// Placeholders para referencias rotas (producto/usuario eliminado bajo la venta).
const (
	UnknownProduct = "Unknown product"
	UnknownUser    = "Unknown user"
)

// ProductSales ventas agregadas por nombre de producto.
type ProductSales struct {
	ProductName   string          `json:"productName"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// UserSales ventas agregadas por nombre de usuario.
type UserSales struct {
	UserName    string          `json:"userName"`
	TotalSales  int             `json:"totalSales"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// MonthlySales ingresos agrupados por mes calendario (clave YYYY-MM).
type MonthlySales struct {
	Month       string          `json:"month"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// Metrics métricas globales calculadas sobre el conjunto COMPLETO de ventas,
// no sobre el subconjunto filtrado. El totalSales de un reporte refleja el
// ingreso global; los conteos/promedios del resumen salen del subconjunto
// filtrado. Esa asimetría es contrato de compatibilidad (ver DESIGN.md).
type Metrics struct {
	TotalSales     decimal.Decimal `json:"totalSales"`
	SalesByProduct []ProductSales  `json:"salesByProduct"`
	SalesByUser    []UserSales     `json:"salesByUser"`
	MonthlySales   []MonthlySales  `json:"monthlySales"`
}

// Aggregate calcula las métricas sobre todas las ventas. Con cero ventas
// devuelve totales en 0 y listas vacías (nunca NaN ni división por cero).
//
// La clave de agrupación es el nombre visible (producto/usuario), no el ID:
// dos entidades homónimas son indistinguibles en los agregados. Limitación
// documentada del sistema, se preserva tal cual.
func Aggregate(sales []entity.Sale) Metrics {
	m := Metrics{
		TotalSales:     decimal.Zero,
		SalesByProduct: []ProductSales{},
		SalesByUser:    []UserSales{},
		MonthlySales:   []MonthlySales{},
	}

	byProduct := map[string]int{} // nombre -> índice en SalesByProduct
	byUser := map[string]int{}
	byMonth := map[string]int{}

	for _, s := range sales {
		amount := s.Total()
		m.TotalSales = m.TotalSales.Add(amount)

		pname := s.ProductName
		if pname == "" {
			pname = UnknownProduct
		}
		if i, ok := byProduct[pname]; ok {
			m.SalesByProduct[i].TotalQuantity += s.Quantity
			m.SalesByProduct[i].TotalAmount = m.SalesByProduct[i].TotalAmount.Add(amount)
		} else {
			byProduct[pname] = len(m.SalesByProduct)
			m.SalesByProduct = append(m.SalesByProduct, ProductSales{
				ProductName:   pname,
				TotalQuantity: s.Quantity,
				TotalAmount:   amount,
			})
		}

		uname := s.UserName
		if uname == "" {
			uname = UnknownUser
		}
		if i, ok := byUser[uname]; ok {
			m.SalesByUser[i].TotalSales++
			m.SalesByUser[i].TotalAmount = m.SalesByUser[i].TotalAmount.Add(amount)
		} else {
			byUser[uname] = len(m.SalesByUser)
			m.SalesByUser = append(m.SalesByUser, UserSales{
				UserName:    uname,
				TotalSales:  1,
				TotalAmount: amount,
			})
		}

		month := s.Date.Format("2006-01")
		if i, ok := byMonth[month]; ok {
			m.MonthlySales[i].TotalAmount = m.MonthlySales[i].TotalAmount.Add(amount)
		} else {
			byMonth[month] = len(m.MonthlySales)
			m.MonthlySales = append(m.MonthlySales, MonthlySales{
				Month:       month,
				TotalAmount: amount,
			})
		}
	}

	// Solo la serie mensual tiene orden propio (ascendente por clave);
	// los demás grupos conservan el orden de primera aparición.
	sort.Slice(m.MonthlySales, func(i, j int) bool {
		return m.MonthlySales[i].Month < m.MonthlySales[j].Month
	})

	return m
}
