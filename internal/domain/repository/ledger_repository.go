package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// LedgerRepository define el puerto de lectura del libro de movimientos:
// las líneas de remito de un producto o variante, anotadas con el tipo y
// estado del remito padre. Cada lectura es un único statement SQL, por lo que
// el agregador siempre ve un conjunto transaccionalmente consistente.
type LedgerRepository interface {
	ListByProduct(productID string) ([]entity.LedgerEntry, error)
	ListByVariant(variantID string) ([]entity.LedgerEntry, error)
}
