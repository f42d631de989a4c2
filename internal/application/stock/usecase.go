package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/stock-api/internal/application/dto"
	"github.com/tu-usuario/stock-api/internal/domain"
	"github.com/tu-usuario/stock-api/internal/domain/repository"
)

// UpdateStockUseCase es el motor de reconciliación de stock: aplica un lote de retiros
// sobre los pools de proveedores de un producto y recalcula el total del producto como
// Σ quantity de TODOS sus proveedores.
//
// Toda la operación corre en UNA transacción con bloqueo de fila (SELECT FOR UPDATE)
// sobre el producto y cada proveedor afectado: ante cualquier violación se hace
// Rollback completo, ningún decremento previo del lote queda persistido.
//
// La operación NO es idempotente: repetir el mismo lote vuelve a decrementar y
// termina fallando por stock insuficiente.
type UpdateStockUseCase struct {
	txRunner TxRunner
}

// NewUpdateStockUseCase construye el motor con el runner transaccional.
func NewUpdateStockUseCase(txRunner TxRunner) *UpdateStockUseCase {
	return &UpdateStockUseCase{txRunner: txRunner}
}

// UpdateStock valida y aplica los retiros en el orden de la lista, fallando rápido en
// la primera violación (solo esa se reporta):
//
//  1. product_id ausente o inexistente            -> domain.ErrNotFound
//  2. lista de retiros vacía                      -> domain.ErrInvalidInput
//  3. por retiro: supplier_id/quantity ausentes   -> domain.ErrInvalidInput
//     quantity negativa                           -> domain.ErrInvalidInput
//     proveedor inexistente o de otro producto    -> domain.ErrNotFound
//     quantity mayor al disponible                -> domain.ErrInsufficientStock
//
// En éxito devuelve el producto con su total recalculado y la suma retirada.
func (uc *UpdateStockUseCase) UpdateStock(ctx context.Context, in dto.UpdateStockRequest) (*dto.UpdateStockResponse, error) {
	var out *dto.UpdateStockResponse

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		supplierRepo repository.SupplierRepository,
	) error {
		if in.ProductID == "" {
			return fmt.Errorf("product_id es requerido: %w", domain.ErrNotFound)
		}
		// Bloquea la fila del producto: serializa reconciliaciones concurrentes
		// sobre el mismo producto.
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("producto %s: %w", in.ProductID, domain.ErrNotFound)
		}
		if len(in.StockUpdates) == 0 {
			return fmt.Errorf("stock_updates no puede estar vacío: %w", domain.ErrInvalidInput)
		}

		var totalWithdrawn int64
		for i, u := range in.StockUpdates {
			if u.SupplierID == nil || *u.SupplierID == "" || u.Quantity == nil {
				return fmt.Errorf("stock_updates[%d]: supplier_id y quantity son requeridos: %w", i, domain.ErrInvalidInput)
			}
			qty := *u.Quantity
			if qty < 0 {
				return fmt.Errorf("stock_updates[%d]: quantity no puede ser negativa: %w", i, domain.ErrInvalidInput)
			}
			// Relee y bloquea al proveedor justo antes de validar/decrementar.
			supplier, err := supplierRepo.GetForUpdate(*u.SupplierID)
			if err != nil {
				return err
			}
			if supplier == nil || supplier.ProductID != product.ID {
				return fmt.Errorf("stock_updates[%d]: proveedor %s del producto %s: %w", i, *u.SupplierID, product.ID, domain.ErrNotFound)
			}
			if qty > supplier.Quantity {
				return fmt.Errorf("stock_updates[%d]: el proveedor %s solo dispone de %d unidades (solicitadas %d): %w",
					i, supplier.Name, supplier.Quantity, qty, domain.ErrInsufficientStock)
			}
			if err := supplierRepo.UpdateQuantity(supplier.ID, supplier.Quantity-qty); err != nil {
				return err
			}
			totalWithdrawn += qty
		}

		// Total autoritativo: Σ sobre TODOS los proveedores del producto, no solo
		// los tocados en este lote.
		total, err := supplierRepo.SumQuantityByProduct(product.ID)
		if err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(product.ID, total); err != nil {
			return err
		}

		product.Quantity = total
		product.UpdatedAt = time.Now()
		out = &dto.UpdateStockResponse{
			Product: dto.ProductResponse{
				ID:        product.ID,
				Name:      product.Name,
				Quantity:  product.Quantity,
				Price:     product.Price,
				CreatedAt: product.CreatedAt,
				UpdatedAt: product.UpdatedAt,
			},
			TotalWithdrawn: totalWithdrawn,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
