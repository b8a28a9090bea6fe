package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// TransferRow fila persistida del traslado: referencia a ambos remitos por ID
// (los objetos Docket se resuelven con un join explícito al leer).
type TransferRow struct {
	ID             string
	Code           string
	ExportDocketID string
	ImportDocketID string
}

// TransferRepository define el puerto de persistencia para traslados.
type TransferRepository interface {
	Create(row *TransferRow) error
	// Touch actualiza updated_at del traslado (al avanzar sus remitos).
	Touch(id string) error
	GetByID(id string) (*entity.Transfer, error)
	GetByCode(code string) (*entity.Transfer, error)
	Delete(id string) error
	List(limit, offset int) ([]*entity.Transfer, error)
}
