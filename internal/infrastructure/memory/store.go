// Package memory implementa los puertos de persistencia sobre mapas en memoria.
// Se usa en tests de casos de uso y handlers, sin PostgreSQL.
package memory

import (
	"sync"

	"github.com/tu-usuario/stock-api/internal/domain/entity"
)

type productRec struct {
	product entity.Product
	seq     int64
}

type supplierRec struct {
	supplier entity.Supplier
	seq      int64
}

// Store guarda productos y proveedores en memoria. Los repos y el TxRunner
// comparten la misma instancia.
type Store struct {
	mu        sync.Mutex
	products  map[string]*productRec
	suppliers map[string]*supplierRec
	seq       int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:  map[string]*productRec{},
		suppliers: map[string]*supplierRec{},
	}
}

// ProductRepository devuelve la vista de productos del almacén.
func (s *Store) ProductRepository() *ProductRepo {
	return &ProductRepo{store: s}
}

// SupplierRepository devuelve la vista de proveedores del almacén.
func (s *Store) SupplierRepository() *SupplierRepo {
	return &SupplierRepo{store: s}
}

// TxRunner devuelve un runner que simula transacciones con snapshot/restore.
func (s *Store) TxRunner() *TxRunner {
	return &TxRunner{store: s}
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

func (s *Store) snapshot() (map[string]*productRec, map[string]*supplierRec) {
	products := make(map[string]*productRec, len(s.products))
	for id, rec := range s.products {
		cp := *rec
		products[id] = &cp
	}
	suppliers := make(map[string]*supplierRec, len(s.suppliers))
	for id, rec := range s.suppliers {
		cp := *rec
		suppliers[id] = &cp
	}
	return products, suppliers
}
