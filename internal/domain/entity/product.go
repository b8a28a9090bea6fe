package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El stock no vive aquí:
// se deriva del libro de movimientos por producto o por variante.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta de referencia
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Variant representa una variante vendible de un producto (talla, color).
// Todas las líneas de remito referencian variantes, nunca productos directos.
type Variant struct {
	ID        string
	ProductID string
	SKU       string
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
