package memory

import (
	"context"

	"github.com/tu-usuario/stock-api/internal/application/stock"
	"github.com/tu-usuario/stock-api/internal/domain/repository"
)

var _ stock.TxRunner = (*TxRunner)(nil)

// TxRunner simula transacciones sobre el Store: toma un snapshot antes de ejecutar fn
// y lo restaura si fn devuelve error. Reproduce la semántica Commit/Rollback del
// runner PostgreSQL en los tests.
type TxRunner struct {
	store *Store
}

// Run ejecuta fn con los repos del almacén; ante error restaura el estado previo.
func (r *TxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) error) error {
	r.store.mu.Lock()
	products, suppliers := r.store.snapshot()
	r.store.mu.Unlock()

	if err := fn(r.store.ProductRepository(), r.store.SupplierRepository()); err != nil {
		r.store.mu.Lock()
		r.store.products = products
		r.store.suppliers = suppliers
		r.store.mu.Unlock()
		return err
	}
	return nil
}
