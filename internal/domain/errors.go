package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound                = errors.New("recurso no encontrado")
	ErrDuplicate               = errors.New("recurso duplicado")
	ErrConflict                = errors.New("conflicto con el estado actual")
	ErrInvalidDocketRequest    = errors.New("solicitud de remito inválida")
	ErrInvalidStatusTransition = errors.New("transición de estado inválida")
	ErrDocketLocked            = errors.New("remito completado: historial inmutable")
	ErrUnbalancedTransfer      = errors.New("traslado desbalanceado: exportación e importación no coinciden")
	ErrSameWarehouseTransfer   = errors.New("traslado entre la misma bodega")
	ErrConcurrentModification  = errors.New("modificación concurrente detectada")
)
