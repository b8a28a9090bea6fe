package dto

// AvailabilityResponse las cuatro métricas derivadas del libro de movimientos.
// can_be_sold puede ser negativo: señala sobreventa y se expone sin recortar.
type AvailabilityResponse struct {
	Inventory          int64 `json:"inventory"`
	WaitingForDelivery int64 `json:"waiting_for_delivery"`
	CanBeSold          int64 `json:"can_be_sold"`
	AreComing          int64 `json:"are_coming"`
}
