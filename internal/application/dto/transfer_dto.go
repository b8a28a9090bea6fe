package dto

import "time"

// TransferSideRequest un lado del traslado (exportación o importación).
// Ambos lados deben describir el mismo multiconjunto (variante, cantidad).
type TransferSideRequest struct {
	WarehouseID string              `json:"warehouse_id"`
	ReasonID    string              `json:"reason_id"`
	Items       []DocketItemRequest `json:"items"`
}

// CreateTransferRequest body para POST /api/transfers.
type CreateTransferRequest struct {
	Code   string              `json:"code"`
	Export TransferSideRequest `json:"export"`
	Import TransferSideRequest `json:"import"`
}

// TransferResponse traslado con sus dos remitos miembros y estado compuesto.
type TransferResponse struct {
	ID        string         `json:"id"`
	Code      string         `json:"code"`
	Status    string         `json:"status"` // COMPLETED solo si ambos remitos lo están
	Export    DocketResponse `json:"export"`
	Import    DocketResponse `json:"import"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TransferListResponse listado paginado de traslados.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
