package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto cuyo stock total es la suma de los pools de sus proveedores.
// Quantity es un valor derivado (vista materializada): solo el motor de reconciliación
// lo reescribe después de la creación.
type Product struct {
	ID        string
	Name      string
	Quantity  int64           // Σ supplier.Quantity de sus proveedores
	Price     decimal.Decimal // precio de venta, no negativo
	CreatedAt time.Time
	UpdatedAt time.Time
}
