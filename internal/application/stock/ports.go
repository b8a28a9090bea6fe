package stock

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor del
// libro de movimientos: remito + líneas, o los dos remitos de un traslado,
// se graban completos o no se graba nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		docketRepo repository.DocketRepository,
		transferRepo repository.TransferRepository,
	) error) error
}
