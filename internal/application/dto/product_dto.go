package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Quantity solo se acepta aquí:
// después de la creación el total lo administra el motor de reconciliación.
type CreateProductRequest struct {
	Name     string           `json:"name"`
	Quantity *int64           `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
}

// UpdateProductRequest entrada para actualizar un producto (PUT exige todos los campos,
// PATCH solo los presentes). Quantity no es actualizable: lo reescribe la reconciliación.
type UpdateProductRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
