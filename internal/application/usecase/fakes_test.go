package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/report"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia, compartidos por los tests
// de casos de uso. Replican el contrato de los repos reales: "no encontrado"
// es (nil, nil), nunca error.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users  []entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{nextID: 1} }

func (r *fakeUserRepo) Create(user *entity.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]entity.User, error) {
	return append([]entity.User(nil), r.users...), nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	return errors.New("usuario inexistente")
}

func (r *fakeUserRepo) Delete(id int64) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) Count() (int, error) { return len(r.users), nil }

type fakeProductRepo struct {
	products []entity.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo { return &fakeProductRepo{nextID: 1} }

func (r *fakeProductRepo) Create(product *entity.Product) error {
	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, *product)
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List() ([]entity.Product, error) {
	return append([]entity.Product(nil), r.products...), nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return errors.New("producto inexistente")
}

func (r *fakeProductRepo) Delete(id int64) error {
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeProductRepo) Count() (int, error) { return len(r.products), nil }

type fakeSaleRepo struct {
	sales  []entity.Sale
	nextID int64
	// listErr fuerza un fallo en ListAll para probar la propagación de errores.
	listErr error
}

func newFakeSaleRepo() *fakeSaleRepo { return &fakeSaleRepo{nextID: 1} }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	sale.ID = r.nextID
	r.nextID++
	r.sales = append(r.sales, *sale)
	return nil
}

func (r *fakeSaleRepo) GetByID(id int64) (*entity.Sale, error) {
	for i := range r.sales {
		if r.sales[i].ID == id {
			s := r.sales[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) ListAll() ([]entity.Sale, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]entity.Sale(nil), r.sales...), nil
}

func (r *fakeSaleRepo) Update(sale *entity.Sale) error {
	for i := range r.sales {
		if r.sales[i].ID == sale.ID {
			r.sales[i] = *sale
			return nil
		}
	}
	return errors.New("venta inexistente")
}

func (r *fakeSaleRepo) Delete(id int64) error {
	for i := range r.sales {
		if r.sales[i].ID == id {
			r.sales = append(r.sales[:i], r.sales[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeSaleRepo) DeleteByUser(userID int64) (int64, error) {
	var kept []entity.Sale
	var deleted int64
	for _, s := range r.sales {
		if s.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, s)
	}
	r.sales = kept
	return deleted, nil
}

func (r *fakeSaleRepo) CountByProduct(productID int64) (int, error) {
	n := 0
	for _, s := range r.sales {
		if s.ProductID == productID {
			n++
		}
	}
	return n, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los repos en memoria
// (sin transacción real).
type fakeTxRunner struct {
	saleRepo *fakeSaleRepo
	userRepo *fakeUserRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(saleRepo repository.SaleRepository, userRepo repository.UserRepository) error) error {
	return fn(t.saleRepo, t.userRepo)
}

// fakePDFGenerator devuelve un binario fijo o el error configurado, y retiene
// el último documento recibido para inspección.
type fakePDFGenerator struct {
	out     []byte
	err     error
	lastDoc report.Document
}

func (g *fakePDFGenerator) GenerateReportPDF(ctx context.Context, doc report.Document) ([]byte, error) {
	g.lastDoc = doc
	return g.out, g.err
}

// seedSaleRepo inserta una venta de prueba directamente en el repo fake.
func seedSaleRepo(r *fakeSaleRepo, productID, userID int64, qty int, price string, date time.Time, productName, userName string) entity.Sale {
	s := entity.Sale{
		ProductID:   productID,
		UserID:      userID,
		Quantity:    qty,
		UnitPrice:   decimal.RequireFromString(price),
		Date:        date,
		ProductName: productName,
		UserName:    userName,
	}
	_ = r.Create(&s)
	return s
}
