package memory

import (
	"sort"

	"github.com/tu-usuario/stock-api/internal/domain/entity"
	"github.com/tu-usuario/stock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	store *Store
}

// Create guarda una copia del producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.products[product.ID] = &productRec{product: *product, seq: r.store.nextSeq()}
	return nil
}

// GetByID devuelve una copia del producto o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rec, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	p := rec.product
	return &p, nil
}

// GetForUpdate en memoria equivale a GetByID: el TxRunner serializa las transacciones.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

// List devuelve los productos, más recientes primero.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	recs := make([]*productRec, 0, len(r.store.products))
	for _, rec := range r.store.products {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq > recs[j].seq })
	list := make([]*entity.Product, 0, len(recs))
	for _, rec := range recs {
		p := rec.product
		list = append(list, &p)
	}
	return list, nil
}

// Update reemplaza los campos del producto existente. Ignora IDs desconocidos.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if rec, ok := r.store.products[product.ID]; ok {
		rec.product = *product
	}
	return nil
}

// UpdateQuantity reescribe el total derivado.
func (r *ProductRepo) UpdateQuantity(id string, quantity int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if rec, ok := r.store.products[id]; ok {
		rec.product.Quantity = quantity
	}
	return nil
}

// Delete elimina el producto y, en cascada, todos sus proveedores.
func (r *ProductRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.products, id)
	for sid, rec := range r.store.suppliers {
		if rec.supplier.ProductID == id {
			delete(r.store.suppliers, sid)
		}
	}
	return nil
}
