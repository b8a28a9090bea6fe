package entity

import "time"

// Transfer representa un traslado de stock entre dos bodegas:
// un remito EXPORT en la bodega origen y un remito IMPORT en la destino,
// con las mismas líneas (variante, cantidad) en ambos lados.
// Ningún remito miembro puede pertenecer a otro traslado.
type Transfer struct {
	ID           string
	Code         string
	ExportDocket *Docket
	ImportDocket *Docket
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Status estado compuesto del traslado: COMPLETED solo cuando ambos remitos
// están COMPLETED; si no, el estado más temprano de los dos miembros.
func (t *Transfer) Status() DocketStatus {
	exp, imp := t.ExportDocket.Status, t.ImportDocket.Status
	if exp == DocketStatusCompleted && imp == DocketStatusCompleted {
		return DocketStatusCompleted
	}
	if exp.Before(imp) {
		return exp
	}
	return imp
}
