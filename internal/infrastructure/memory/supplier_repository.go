package memory

import (
	"sort"

	"github.com/tu-usuario/stock-api/internal/domain/entity"
	"github.com/tu-usuario/stock-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación en memoria de SupplierRepository.
type SupplierRepo struct {
	store *Store
}

// Create guarda una copia del proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.suppliers[supplier.ID] = &supplierRec{supplier: *supplier, seq: r.store.nextSeq()}
	return nil
}

// GetByID devuelve una copia del proveedor o (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rec, ok := r.store.suppliers[id]
	if !ok {
		return nil, nil
	}
	s := rec.supplier
	return &s, nil
}

// GetForUpdate en memoria equivale a GetByID: el TxRunner serializa las transacciones.
func (r *SupplierRepo) GetForUpdate(id string) (*entity.Supplier, error) {
	return r.GetByID(id)
}

// List devuelve los proveedores, más recientes primero.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	return r.listWhere(func(entity.Supplier) bool { return true })
}

// ListByProduct devuelve los proveedores de un producto, más recientes primero.
func (r *SupplierRepo) ListByProduct(productID string) ([]*entity.Supplier, error) {
	return r.listWhere(func(s entity.Supplier) bool { return s.ProductID == productID })
}

// SumQuantityByProduct devuelve Σ quantity de los proveedores del producto.
func (r *SupplierRepo) SumQuantityByProduct(productID string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var total int64
	for _, rec := range r.store.suppliers {
		if rec.supplier.ProductID == productID {
			total += rec.supplier.Quantity
		}
	}
	return total, nil
}

// Update reemplaza los campos del proveedor existente. Ignora IDs desconocidos.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if rec, ok := r.store.suppliers[supplier.ID]; ok {
		rec.supplier = *supplier
	}
	return nil
}

// UpdateQuantity reescribe el stock restante del proveedor.
func (r *SupplierRepo) UpdateQuantity(id string, quantity int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if rec, ok := r.store.suppliers[id]; ok {
		rec.supplier.Quantity = quantity
	}
	return nil
}

// Delete elimina el proveedor.
func (r *SupplierRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.suppliers, id)
	return nil
}

func (r *SupplierRepo) listWhere(match func(entity.Supplier) bool) ([]*entity.Supplier, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	recs := make([]*supplierRec, 0, len(r.store.suppliers))
	for _, rec := range r.store.suppliers {
		if match(rec.supplier) {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq > recs[j].seq })
	list := make([]*entity.Supplier, 0, len(recs))
	for _, rec := range recs {
		s := rec.supplier
		list = append(list, &s)
	}
	return list, nil
}
