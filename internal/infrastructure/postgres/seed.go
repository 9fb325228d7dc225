package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
)

// Seed puebla datos de ejemplo de forma idempotente: solo inserta en tablas
// vacías. Se invoca una vez en el arranque, después de EnsureSchema; no está
// acoplado a la construcción de ningún servicio.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	productRepo := NewProductRepository(pool)
	userRepo := NewUserRepository(pool)
	saleRepo := NewSaleRepository(pool)

	products := []entity.Product{
		{Name: "Laptop Pro", Description: "High-end laptop for professionals"},
		{Name: "Smartphone X", Description: "Latest smartphone with advanced features"},
		{Name: "Tablet Ultra", Description: "Ultra-thin tablet with high resolution display"},
	}
	productCount, err := productRepo.Count()
	if err != nil {
		return err
	}
	if productCount == 0 {
		for i := range products {
			if err := productRepo.Create(&products[i]); err != nil {
				return fmt.Errorf("seed products: %w", err)
			}
		}
	} else {
		existing, err := productRepo.List()
		if err != nil {
			return err
		}
		products = existing
	}

	admin := &entity.User{Name: "Administrator", Email: "admin@example.com"}
	userCount, err := userRepo.Count()
	if err != nil {
		return err
	}
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin.PasswordHash = string(hash)
		if err := userRepo.Create(admin); err != nil {
			return fmt.Errorf("seed admin user: %w", err)
		}
	} else {
		existing, err := userRepo.GetByEmail(admin.Email)
		if err != nil {
			return err
		}
		if existing == nil {
			return nil // usuarios propios sin admin: no sembrar ventas
		}
		admin = existing
	}

	saleCount := 0
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&saleCount); err != nil {
		return fmt.Errorf("count sales: %w", err)
	}
	if saleCount > 0 || len(products) < 3 {
		return nil
	}

	samples := []entity.Sale{
		{ProductID: products[0].ID, Quantity: 5, UnitPrice: decimal.RequireFromString("199.99"), Date: date(2023, 1, 15)},
		{ProductID: products[1].ID, Quantity: 2, UnitPrice: decimal.RequireFromString("499.99"), Date: date(2023, 1, 20)},
		{ProductID: products[0].ID, Quantity: 3, UnitPrice: decimal.RequireFromString("199.99"), Date: date(2023, 2, 5)},
		{ProductID: products[2].ID, Quantity: 1, UnitPrice: decimal.RequireFromString("999.99"), Date: date(2023, 2, 15)},
		{ProductID: products[1].ID, Quantity: 4, UnitPrice: decimal.RequireFromString("499.99"), Date: date(2023, 3, 10)},
	}
	for i := range samples {
		samples[i].UserID = admin.ID
		if err := saleRepo.Create(&samples[i]); err != nil {
			return fmt.Errorf("seed sales: %w", err)
		}
	}
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
