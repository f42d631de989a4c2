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

// ProductUseCase casos de uso CRUD para productos. Quantity solo se fija al crear;
// después lo administra el motor de reconciliación.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto validando campo por campo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	verr := domain.NewValidationError()
	if in.Name == "" {
		verr.Add("name", "este campo es requerido y no puede estar vacío")
	}
	if in.Quantity == nil {
		verr.Add("quantity", "este campo es requerido")
	} else if *in.Quantity < 0 {
		verr.Add("quantity", "no puede ser negativa")
	}
	if in.Price == nil {
		verr.Add("price", "este campo es requerido")
	} else if in.Price.LessThan(decimal.Zero) {
		verr.Add("price", "no puede ser negativo")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Quantity:  *in.Quantity,
		Price:     *in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	return toProductResponse(product), nil
}

// List lista todos los productos (más recientes primero).
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update actualiza un producto. partial=false (PUT) exige todos los campos editables;
// partial=true (PATCH) aplica solo los presentes. Quantity nunca se modifica por esta vía.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest, partial bool) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}

	verr := domain.NewValidationError()
	if !partial {
		if in.Name == nil {
			verr.Add("name", "este campo es requerido")
		}
		if in.Price == nil {
			verr.Add("price", "este campo es requerido")
		}
	}
	if in.Name != nil && *in.Name == "" {
		verr.Add("name", "no puede estar vacío")
	}
	if in.Price != nil && in.Price.LessThan(decimal.Zero) {
		verr.Add("price", "no puede ser negativo")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto; sus proveedores caen en cascada.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Quantity:  p.Quantity,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
