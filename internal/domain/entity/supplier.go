package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa una fuente de stock para exactamente un producto.
// Quantity es el stock entregable restante; la reconciliación lo decrementa y nunca queda negativo.
type Supplier struct {
	ID        string
	Name      string
	Quality   string // etiqueta libre
	LeadTime  int    // días, no negativo
	ProductID string
	Quantity  int64
	Cost      decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
