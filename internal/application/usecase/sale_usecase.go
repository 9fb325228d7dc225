package usecase

import (
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/report"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// SaleUseCase casos de uso para ventas: CRUD, listado filtrado y métricas.
// Crear o actualizar valida la existencia del producto y usuario referenciados
// antes de persistir.
type SaleUseCase struct {
	repo        repository.SaleRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo, productRepo: productRepo, userRepo: userRepo}
}

// Create registra una venta. Producto o usuario inexistente -> ErrProductNotFound / ErrUserNotFound.
func (uc *SaleUseCase) Create(in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.Quantity <= 0 || in.UnitPrice.IsNegative() || in.UnitPrice.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if date == nil {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	sale := &entity.Sale{
		ProductID:   in.ProductID,
		UserID:      in.UserID,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		Date:        *date,
		ProductName: product.Name,
		UserName:    user.Name,
	}
	if err := uc.repo.Create(sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta por ID. Devuelve nil si no existe.
func (uc *SaleUseCase) GetByID(id int64) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// List lista todas las ventas con sus referencias resueltas.
func (uc *SaleUseCase) List() ([]dto.SaleResponse, error) {
	sales, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}

// Update actualiza una venta. Las referencias nuevas se validan igual que en Create.
func (uc *SaleUseCase) Update(id int64, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	if in.ProductID != nil {
		product, err := uc.productRepo.GetByID(*in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrProductNotFound
		}
		sale.ProductID = *in.ProductID
		sale.ProductName = product.Name
	}
	if in.UserID != nil {
		user, err := uc.userRepo.GetByID(*in.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.ErrUserNotFound
		}
		sale.UserID = *in.UserID
		sale.UserName = user.Name
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		sale.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() || in.UnitPrice.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		sale.UnitPrice = *in.UnitPrice
	}
	if in.Date != nil {
		date, err := parseDate(*in.Date)
		if err != nil {
			return nil, err
		}
		if date == nil {
			return nil, domain.ErrInvalidInput
		}
		sale.Date = *date
	}
	if err := uc.repo.Update(sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// Delete elimina una venta por ID. Inexistente -> ErrNotFound.
func (uc *SaleUseCase) Delete(id int64) error {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Filter devuelve las ventas dentro de la ventana pedida, en el mismo orden
// relativo en que las entrega el almacenamiento.
func (uc *SaleUseCase) Filter(in dto.FilterSalesRequest) ([]dto.SaleResponse, error) {
	filters, err := parseFilters(in.StartDate, in.EndDate, in.ProductID, in.UserID)
	if err != nil {
		return nil, err
	}
	sales, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toSaleResponses(report.Filter(sales, filters)), nil
}

// Metrics calcula las métricas globales sobre todas las ventas.
func (uc *SaleUseCase) Metrics() (*report.Metrics, error) {
	sales, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	m := report.Aggregate(sales)
	return &m, nil
}

// parseFilters valida las fechas del borde y arma la ventana de filtrado.
func parseFilters(startDate, endDate string, productID, userID *int64) (report.Filters, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return report.Filters{}, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return report.Filters{}, err
	}
	return report.Filters{
		StartDate: start,
		EndDate:   end,
		ProductID: productID,
		UserID:    userID,
	}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		UserID:    s.UserID,
		Quantity:  s.Quantity,
		UnitPrice: s.UnitPrice,
		Date:      s.Date,
		Product:   s.ProductName,
		User:      s.UserName,
		Total:     s.Total(),
	}
}

func toSaleResponses(sales []entity.Sale) []dto.SaleResponse {
	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, *toSaleResponse(&sales[i]))
	}
	return out
}
