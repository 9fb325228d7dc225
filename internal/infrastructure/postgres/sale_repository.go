package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
// Los listados resuelven nombre de producto y usuario con LEFT JOIN: si la
// referencia ya no existe el nombre queda vacío y aguas arriba se renderiza
// el placeholder.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `
	s.id, s.product_id, s.user_id, s.quantity, s.unit_price, s.date,
	COALESCE(p.name, ''), COALESCE(u.name, '')`

const saleJoins = `
	FROM sales s
	LEFT JOIN products p ON p.id = s.product_id
	LEFT JOIN users u ON u.id = s.user_id`

// Create persiste una nueva venta y asigna el ID generado.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO sales (product_id, user_id, quantity, unit_price, date)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		sale.ProductID, sale.UserID, sale.Quantity, sale.UnitPrice, sale.Date,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID con sus referencias resueltas.
func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(context.Background(),
		`SELECT`+saleColumns+saleJoins+` WHERE s.id = $1`, id,
	).Scan(&s.ID, &s.ProductID, &s.UserID, &s.Quantity, &s.UnitPrice, &s.Date,
		&s.ProductName, &s.UserName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// ListAll lista todas las ventas por ID ascendente. Este orden es el que
// heredan el listado filtrado y las filas de detalle de los reportes.
func (r *SaleRepo) ListAll() ([]entity.Sale, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT`+saleColumns+saleJoins+` ORDER BY s.id`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.UserID, &s.Quantity, &s.UnitPrice,
			&s.Date, &s.ProductName, &s.UserName); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update actualiza una venta existente.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales SET product_id = $2, user_id = $3, quantity = $4, unit_price = $5, date = $6
		 WHERE id = $1`,
		sale.ID, sale.ProductID, sale.UserID, sale.Quantity, sale.UnitPrice, sale.Date,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete elimina una venta por ID.
func (r *SaleRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// DeleteByUser elimina todas las ventas de un usuario y devuelve cuántas borró.
func (r *SaleRepo) DeleteByUser(userID int64) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("delete sales by user: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// CountByProduct cuenta las ventas que referencian un producto.
func (r *SaleRepo) CountByProduct(productID int64) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM sales WHERE product_id = $1`, productID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sales by product: %w", err)
	}
	return n, nil
}
