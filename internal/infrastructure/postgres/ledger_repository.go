package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo lectura del libro de movimientos sobre PostgreSQL: las líneas de
// remito anotadas con el tipo y estado del remito padre mediante un join
// explícito. Cada consulta es un único statement, así que el agregador siempre
// ve un snapshot transaccionalmente consistente (MVCC por statement), sin
// bloquear a los escritores.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

const ledgerSelect = `
	SELECT di.docket_id, di.variant_id, di.product_id, d.type, d.status, di.quantity
	FROM docket_items di
	JOIN dockets d ON d.id = di.docket_id`

// ListByProduct devuelve todas las líneas del libro para un producto
// (todas sus variantes).
func (r *LedgerRepo) ListByProduct(productID string) ([]entity.LedgerEntry, error) {
	return r.list(ledgerSelect+` WHERE di.product_id = $1`, productID)
}

// ListByVariant devuelve todas las líneas del libro para una variante.
func (r *LedgerRepo) ListByVariant(variantID string) ([]entity.LedgerEntry, error) {
	return r.list(ledgerSelect+` WHERE di.variant_id = $1`, variantID)
}

func (r *LedgerRepo) list(query string, arg any) ([]entity.LedgerEntry, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	var list []entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		var docketType, status string
		if err := rows.Scan(&e.DocketID, &e.VariantID, &e.ProductID, &docketType, &status, &e.Quantity); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		e.Type = entity.DocketType(docketType)
		e.Status = entity.DocketStatus(status)
		list = append(list, e)
	}
	return list, rows.Err()
}
