package entity

import "time"

// Reason motivo de un remito (compra, venta, ajuste, traslado, merma, etc.).
type Reason struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
