package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name      string           `json:"name"`
	Quality   string           `json:"quality"`
	LeadTime  *int             `json:"lead_time"`
	ProductID string           `json:"product_id"`
	Quantity  *int64           `json:"quantity"`
	Cost      *decimal.Decimal `json:"cost"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor (PUT exige todos los campos,
// PATCH solo los presentes).
type UpdateSupplierRequest struct {
	Name      *string          `json:"name"`
	Quality   *string          `json:"quality"`
	LeadTime  *int             `json:"lead_time"`
	ProductID *string          `json:"product_id"`
	Quantity  *int64           `json:"quantity"`
	Cost      *decimal.Decimal `json:"cost"`
}

// SupplierResponse salida de un proveedor. ProductDetail incrusta el producto
// propietario (solo lectura).
type SupplierResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Quality       string           `json:"quality"`
	LeadTime      int              `json:"lead_time"`
	ProductID     string           `json:"product_id"`
	ProductDetail *ProductResponse `json:"product_detail,omitempty"`
	Quantity      int64            `json:"quantity"`
	Cost          decimal.Decimal  `json:"cost"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
