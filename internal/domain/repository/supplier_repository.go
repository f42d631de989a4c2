package repository

import "github.com/tu-usuario/stock-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
// Las lecturas devuelven (nil, nil) cuando el ID no existe.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Usar dentro de una transacción.
	GetForUpdate(id string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	ListByProduct(productID string) ([]*entity.Supplier, error)
	// SumQuantityByProduct devuelve Σ quantity de todos los proveedores del producto (0 si no tiene).
	SumQuantityByProduct(productID string) (int64, error)
	Update(supplier *entity.Supplier) error
	// UpdateQuantity reescribe solo el stock restante (usado por el motor de reconciliación).
	UpdateQuantity(id string, quantity int64) error
	Delete(id string) error
}
