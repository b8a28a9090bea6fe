package dto

import "time"

// DocketItemRequest línea de remito: variante y cantidad en unidades (> 0).
type DocketItemRequest struct {
	VariantID string `json:"variant_id"`
	Quantity  int64  `json:"quantity"`
}

// CreateDocketRequest body para POST /api/dockets.
// Code es opcional: si viene vacío se genera uno.
type CreateDocketRequest struct {
	Code        string              `json:"code,omitempty"`
	Type        string              `json:"type"` // IMPORT | EXPORT
	WarehouseID string              `json:"warehouse_id"`
	ReasonID    string              `json:"reason_id"`
	Items       []DocketItemRequest `json:"items"`
}

// UpdateDocketItemsRequest body para PUT /api/dockets/:id/items.
type UpdateDocketItemsRequest struct {
	Items []DocketItemRequest `json:"items"`
}

// AdvanceStatusRequest body para PATCH .../status (remitos y traslados).
type AdvanceStatusRequest struct {
	Status string `json:"status"` // NEW | PROCESSING | COMPLETED
}

// DocketItemResponse línea de remito en respuestas.
type DocketItemResponse struct {
	ID        string `json:"id"`
	VariantID string `json:"variant_id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// DocketResponse remito completo con sus líneas.
type DocketResponse struct {
	ID          string               `json:"id"`
	Code        string               `json:"code"`
	Type        string               `json:"type"`
	Status      string               `json:"status"`
	WarehouseID string               `json:"warehouse_id"`
	ReasonID    string               `json:"reason_id"`
	TransferID  *string              `json:"transfer_id,omitempty"`
	Items       []DocketItemResponse `json:"items"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// DocketListResponse listado paginado de remitos (sin líneas).
type DocketListResponse struct {
	Items []DocketResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
