package stock

import (
	"context"

	"github.com/tu-usuario/stock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que la reconciliación sea atómica: Commit si fn devuelve
// nil, Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		supplierRepo repository.SupplierRepository,
	) error) error
}
