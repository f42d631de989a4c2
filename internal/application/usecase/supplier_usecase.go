package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-api/internal/application/dto"
	"github.com/tu-usuario/stock-api/internal/domain"
	"github.com/tu-usuario/stock-api/internal/domain/entity"
	"github.com/tu-usuario/stock-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores. Las ediciones directas NO
// recalculan el total del producto: esa re-agregación es exclusiva del motor de
// reconciliación.
type SupplierUseCase struct {
	repo        repository.SupplierRepository
	productRepo repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, productRepo repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, productRepo: productRepo}
}

// Create crea un proveedor. product_id debe referenciar un producto existente (error de campo si no).
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	verr := domain.NewValidationError()
	if in.Name == "" {
		verr.Add("name", "este campo es requerido y no puede estar vacío")
	}
	if in.LeadTime == nil {
		verr.Add("lead_time", "este campo es requerido")
	} else if *in.LeadTime < 0 {
		verr.Add("lead_time", "no puede ser negativo")
	}
	if in.Quantity == nil {
		verr.Add("quantity", "este campo es requerido")
	} else if *in.Quantity < 0 {
		verr.Add("quantity", "no puede ser negativa")
	}
	if in.Cost == nil {
		verr.Add("cost", "este campo es requerido")
	} else if in.Cost.LessThan(decimal.Zero) {
		verr.Add("cost", "no puede ser negativo")
	}
	var product *entity.Product
	if in.ProductID == "" {
		verr.Add("product_id", "este campo es requerido")
	} else {
		p, err := uc.productRepo.GetByID(in.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			verr.Add("product_id", "el producto referenciado no existe")
		}
		product = p
	}
	if verr.HasErrors() {
		return nil, verr
	}

	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Quality:   in.Quality,
		LeadTime:  *in.LeadTime,
		ProductID: in.ProductID,
		Quantity:  *in.Quantity,
		Cost:      *in.Cost,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier, product), nil
}

// GetByID obtiene un proveedor por ID con el detalle del producto propietario.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, fmt.Errorf("proveedor %s: %w", id, domain.ErrNotFound)
	}
	product, err := uc.productRepo.GetByID(supplier.ProductID)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier, product), nil
}

// List lista proveedores (más recientes primero), opcionalmente filtrados por producto.
func (uc *SupplierUseCase) List(productID string) ([]dto.SupplierResponse, error) {
	var (
		list []*entity.Supplier
		err  error
	)
	if productID != "" {
		list, err = uc.repo.ListByProduct(productID)
	} else {
		list, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	return uc.toResponses(list)
}

// ListByProduct lista los proveedores de un producto. Devuelve domain.ErrNotFound si
// el producto no existe.
func (uc *SupplierUseCase) ListByProduct(productID string) ([]dto.SupplierResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
	}
	list, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s, product))
	}
	return items, nil
}

// Update actualiza un proveedor. partial=false (PUT) exige todos los campos;
// partial=true (PATCH) aplica solo los presentes. No re-agrega el total del producto.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest, partial bool) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, fmt.Errorf("proveedor %s: %w", id, domain.ErrNotFound)
	}

	verr := domain.NewValidationError()
	if !partial {
		if in.Name == nil {
			verr.Add("name", "este campo es requerido")
		}
		if in.LeadTime == nil {
			verr.Add("lead_time", "este campo es requerido")
		}
		if in.ProductID == nil {
			verr.Add("product_id", "este campo es requerido")
		}
		if in.Quantity == nil {
			verr.Add("quantity", "este campo es requerido")
		}
		if in.Cost == nil {
			verr.Add("cost", "este campo es requerido")
		}
	}
	if in.Name != nil && *in.Name == "" {
		verr.Add("name", "no puede estar vacío")
	}
	if in.LeadTime != nil && *in.LeadTime < 0 {
		verr.Add("lead_time", "no puede ser negativo")
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		verr.Add("quantity", "no puede ser negativa")
	}
	if in.Cost != nil && in.Cost.LessThan(decimal.Zero) {
		verr.Add("cost", "no puede ser negativo")
	}
	if in.ProductID != nil {
		if *in.ProductID == "" {
			verr.Add("product_id", "no puede estar vacío")
		} else if *in.ProductID != supplier.ProductID {
			p, err := uc.productRepo.GetByID(*in.ProductID)
			if err != nil {
				return nil, err
			}
			if p == nil {
				verr.Add("product_id", "el producto referenciado no existe")
			}
		}
	}
	if verr.HasErrors() {
		return nil, verr
	}

	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.Quality != nil {
		supplier.Quality = *in.Quality
	}
	if in.LeadTime != nil {
		supplier.LeadTime = *in.LeadTime
	}
	if in.ProductID != nil {
		supplier.ProductID = *in.ProductID
	}
	if in.Quantity != nil {
		supplier.Quantity = *in.Quantity
	}
	if in.Cost != nil {
		supplier.Cost = *in.Cost
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(supplier.ProductID)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier, product), nil
}

// Delete elimina un proveedor por ID.
func (uc *SupplierUseCase) Delete(id string) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return fmt.Errorf("proveedor %s: %w", id, domain.ErrNotFound)
	}
	return uc.repo.Delete(id)
}

func (uc *SupplierUseCase) toResponses(list []*entity.Supplier) ([]dto.SupplierResponse, error) {
	// Cache por producto para no releer el mismo propietario por cada proveedor.
	products := map[string]*entity.Product{}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		p, ok := products[s.ProductID]
		if !ok {
			var err error
			p, err = uc.productRepo.GetByID(s.ProductID)
			if err != nil {
				return nil, err
			}
			products[s.ProductID] = p
		}
		items = append(items, *toSupplierResponse(s, p))
	}
	return items, nil
}

func toSupplierResponse(s *entity.Supplier, p *entity.Product) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		Quality:       s.Quality,
		LeadTime:      s.LeadTime,
		ProductID:     s.ProductID,
		ProductDetail: toProductResponse(p),
		Quantity:      s.Quantity,
		Cost:          s.Cost,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
