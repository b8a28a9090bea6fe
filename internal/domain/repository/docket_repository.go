package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// DocketRepository define el puerto de persistencia para remitos y sus líneas.
// Los métodos de escritura se usan dentro de transacciones (vía TxRunner) para
// garantizar que el remito y todas sus líneas se graban o ninguno.
type DocketRepository interface {
	Create(docket *entity.Docket, items []*entity.DocketItem) error
	GetByID(id string) (*entity.Docket, error)
	// GetForUpdate bloquea la fila del remito (SELECT FOR UPDATE) dentro de la tx.
	GetForUpdate(id string) (*entity.Docket, error)
	GetItems(docketID string) ([]*entity.DocketItem, error)
	// UpdateStatus aplica un compare-and-set sobre Version: si la fila ya no
	// tiene expectedVersion devuelve domain.ErrConcurrentModification.
	UpdateStatus(id string, status entity.DocketStatus, expectedVersion int) error
	// ReplaceItems reemplaza todas las líneas del remito.
	ReplaceItems(docketID string, items []*entity.DocketItem) error
	// Delete elimina el remito y sus líneas (cascade).
	Delete(id string) error
	// ListByWarehouse lista remitos; warehouseID vacío significa todas las bodegas.
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Docket, error)
}
