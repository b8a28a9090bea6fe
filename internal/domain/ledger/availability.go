// Package ledger contiene la lógica pura de disponibilidad sobre el libro
// de movimientos. No toca persistencia ni falla con entradas bien formadas.
package ledger

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// Compute pliega las líneas del libro de un producto (o variante) en las
// cuatro métricas de disponibilidad:
//
//   - IMPORT COMPLETED  → Inventory += q
//   - EXPORT COMPLETED  → Inventory -= q
//   - EXPORT en vuelo   → WaitingForDelivery += q
//   - IMPORT en vuelo   → AreComing += q
//
// y al final CanBeSold = Inventory - WaitingForDelivery.
//
// Solo los remitos COMPLETED movieron stock físicamente; una exportación en
// vuelo ya compromete unidades que no se pueden prometer a nuevos compradores,
// mientras que una importación en vuelo se cuenta aparte y no es vendible
// hasta completarse. CanBeSold puede quedar negativo (sobreventa): se expone
// tal cual, sin recortar, para que el caller lo detecte.
//
// La suma es conmutativa y asociativa: el orden de las líneas no importa.
// Con entrada vacía todas las métricas son 0.
func Compute(entries []entity.LedgerEntry) entity.Availability {
	var a entity.Availability
	for _, e := range entries {
		switch e.Type {
		case entity.DocketTypeImport:
			if e.Status == entity.DocketStatusCompleted {
				a.Inventory += e.Quantity
			} else if e.Status.InFlight() {
				a.AreComing += e.Quantity
			}
		case entity.DocketTypeExport:
			if e.Status == entity.DocketStatusCompleted {
				a.Inventory -= e.Quantity
			} else if e.Status.InFlight() {
				a.WaitingForDelivery += e.Quantity
			}
		}
	}
	a.CanBeSold = a.Inventory - a.WaitingForDelivery
	return a
}
