package entity

// LedgerEntry es una línea del libro de movimientos: la línea de remito
// anotada con el tipo y estado de su remito padre (join explícito en la
// consulta, sin punteros bidireccionales).
type LedgerEntry struct {
	DocketID  string
	VariantID string
	ProductID string
	Type      DocketType
	Status    DocketStatus
	Quantity  int64
}

// Availability métricas derivadas de disponibilidad para un producto o una
// variante. Se recalcula en cada consulta, nunca se persiste.
type Availability struct {
	Inventory          int64 // stock confirmado (solo remitos COMPLETED)
	WaitingForDelivery int64 // exportaciones en vuelo (NEW/PROCESSING)
	CanBeSold          int64 // Inventory - WaitingForDelivery; puede ser negativo (sobreventa)
	AreComing          int64 // importaciones en vuelo, aún no vendibles
}
