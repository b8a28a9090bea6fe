package entity

import "time"

// DocketType tipo de remito: IMPORT suma stock, EXPORT resta.
type DocketType string

const (
	DocketTypeImport DocketType = "IMPORT"
	DocketTypeExport DocketType = "EXPORT"
)

// ParseDocketType valida el string contra los tipos cerrados.
func ParseDocketType(s string) (DocketType, bool) {
	switch DocketType(s) {
	case DocketTypeImport, DocketTypeExport:
		return DocketType(s), true
	}
	return "", false
}

// DocketStatus estado del ciclo de vida del remito.
// El ciclo es unidireccional: NEW → PROCESSING → COMPLETED (terminal).
type DocketStatus string

const (
	DocketStatusNew        DocketStatus = "NEW"
	DocketStatusProcessing DocketStatus = "PROCESSING"
	DocketStatusCompleted  DocketStatus = "COMPLETED"
)

// ParseDocketStatus valida el string contra los estados cerrados.
func ParseDocketStatus(s string) (DocketStatus, bool) {
	switch DocketStatus(s) {
	case DocketStatusNew, DocketStatusProcessing, DocketStatusCompleted:
		return DocketStatus(s), true
	}
	return "", false
}

// statusRank orden del ciclo de vida; reemplaza la convención de códigos 1/2/3.
var statusRank = map[DocketStatus]int{
	DocketStatusNew:        1,
	DocketStatusProcessing: 2,
	DocketStatusCompleted:  3,
}

// docketTransitions tabla explícita de transiciones legales.
// Se permite saltar PROCESSING (NEW → COMPLETED) pero nunca retroceder.
var docketTransitions = map[DocketStatus][]DocketStatus{
	DocketStatusNew:        {DocketStatusProcessing, DocketStatusCompleted},
	DocketStatusProcessing: {DocketStatusCompleted},
	DocketStatusCompleted:  {},
}

// CanTransition indica si el cambio de estado from → to es legal.
func CanTransition(from, to DocketStatus) bool {
	for _, next := range docketTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// InFlight indica si el remito aún no movió stock físicamente.
func (s DocketStatus) InFlight() bool {
	return s == DocketStatusNew || s == DocketStatusProcessing
}

// Before indica si s precede a other en el orden del ciclo de vida.
func (s DocketStatus) Before(other DocketStatus) bool {
	return statusRank[s] < statusRank[other]
}

// Docket representa un remito de movimiento de bodega (importación o exportación).
// Type y Status se fijan al crear; solo Status puede avanzar, nunca retroceder.
// Version es el contador para el chequeo optimista de concurrencia.
type Docket struct {
	ID          string
	Code        string
	Type        DocketType
	Status      DocketStatus
	WarehouseID string
	ReasonID    string
	TransferID  *string
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Completed indica si el remito es terminal para el libro de movimientos.
func (d *Docket) Completed() bool {
	return d.Status == DocketStatusCompleted
}

// DocketItem línea de un remito: una combinación (remito, variante).
// Inmutable una vez que el remito padre llega a COMPLETED.
type DocketItem struct {
	ID        string
	DocketID  string
	VariantID string
	ProductID string // derivado de la variante al crear
	Quantity  int64  // unidades, siempre > 0
}
