package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stock-api/internal/domain"
	"github.com/tu-usuario/stock-api/internal/domain/entity"
	"github.com/tu-usuario/stock-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, name, quality, lead_time, product_id, quantity, cost, created_at, updated_at`

// Create persiste un nuevo proveedor. Una violación de FK (producto borrado entre
// validación e INSERT) se traduce a domain.ErrInvalidInput.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.Quality, supplier.LeadTime,
		supplier.ProductID, supplier.Quantity, supplier.Cost,
		supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("product_id %s: %w", supplier.ProductID, domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	return r.scanOne(query, id, "get supplier")
}

// GetForUpdate obtiene el proveedor y bloquea la fila (SELECT FOR UPDATE).
// Usar dentro de una transacción.
func (r *SupplierRepo) GetForUpdate(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id, "get supplier for update")
}

// List lista todos los proveedores, más recientes primero.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY created_at DESC`
	return r.scanMany(query, nil, "list suppliers")
}

// ListByProduct lista los proveedores de un producto, más recientes primero.
func (r *SupplierRepo) ListByProduct(productID string) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE product_id = $1 ORDER BY created_at DESC`
	return r.scanMany(query, []any{productID}, "list suppliers by product")
}

// SumQuantityByProduct devuelve Σ quantity de todos los proveedores del producto.
func (r *SupplierRepo) SumQuantityByProduct(productID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM suppliers WHERE product_id = $1`,
		productID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum supplier quantity: %w", err)
	}
	return total, nil
}

// Update actualiza todos los campos editables del proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, quality = $3, lead_time = $4, product_id = $5, quantity = $6, cost = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.Quality, supplier.LeadTime,
		supplier.ProductID, supplier.Quantity, supplier.Cost, supplier.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("product_id %s: %w", supplier.ProductID, domain.ErrInvalidInput)
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// UpdateQuantity reescribe el stock restante del proveedor (usado por el motor de reconciliación).
func (r *SupplierRepo) UpdateQuantity(id string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE suppliers SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update supplier quantity: %w", err)
	}
	return nil
}

// Delete elimina un proveedor por ID.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) scanOne(query, id, op string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Quality, &s.LeadTime, &s.ProductID,
		&s.Quantity, &s.Cost, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

func (r *SupplierRepo) scanMany(query string, args []any, op string) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Quality, &s.LeadTime, &s.ProductID,
			&s.Quantity, &s.Cost, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
