package repository

import "github.com/tu-usuario/stock-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven (nil, nil) cuando el ID no existe; los casos de uso
// lo traducen a domain.ErrNotFound.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Usar dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity reescribe solo el total derivado (usado por el motor de reconciliación).
	UpdateQuantity(id string, quantity int64) error
	// Delete elimina el producto; los proveedores asociados caen en cascada.
	Delete(id string) error
}
