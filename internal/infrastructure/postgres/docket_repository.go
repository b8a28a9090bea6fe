package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.DocketRepository = (*DocketRepo)(nil)

// DocketRepo implementación de DocketRepository sobre PostgreSQL (usable con pool o tx).
type DocketRepo struct {
	q Querier
}

// NewDocketRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocketRepository(q Querier) *DocketRepo {
	return &DocketRepo{q: q}
}

const docketColumns = `id, code, type, status, warehouse_id, reason_id, transfer_id, version, created_at, updated_at`

// Create persiste el remito y todas sus líneas. Debe llamarse dentro de una
// transacción (TxRunner) para que el conjunto sea atómico.
func (r *DocketRepo) Create(docket *entity.Docket, items []*entity.DocketItem) error {
	query := `
		INSERT INTO dockets (` + docketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		docket.ID, docket.Code, string(docket.Type), string(docket.Status),
		docket.WarehouseID, docket.ReasonID, docket.TransferID,
		docket.Version, docket.CreatedAt, docket.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create docket: %w", err)
	}
	for _, it := range items {
		if err := r.insertItem(it); err != nil {
			return err
		}
	}
	return nil
}

func (r *DocketRepo) insertItem(it *entity.DocketItem) error {
	query := `
		INSERT INTO docket_items (id, docket_id, variant_id, product_id, quantity)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		it.ID, it.DocketID, it.VariantID, it.ProductID, it.Quantity,
	)
	if err != nil {
		return fmt.Errorf("create docket item: %w", err)
	}
	return nil
}

// GetByID obtiene un remito por ID (nil si no existe).
func (r *DocketRepo) GetByID(id string) (*entity.Docket, error) {
	query := `SELECT ` + docketColumns + ` FROM dockets WHERE id = $1`
	return r.scanDocket(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el remito y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *DocketRepo) GetForUpdate(id string) (*entity.Docket, error) {
	query := `SELECT ` + docketColumns + ` FROM dockets WHERE id = $1 FOR UPDATE`
	return r.scanDocket(r.q.QueryRow(context.Background(), query, id))
}

func (r *DocketRepo) scanDocket(row pgx.Row) (*entity.Docket, error) {
	var d entity.Docket
	var docketType, status string
	err := row.Scan(
		&d.ID, &d.Code, &docketType, &status, &d.WarehouseID, &d.ReasonID,
		&d.TransferID, &d.Version, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get docket: %w", err)
	}
	d.Type = entity.DocketType(docketType)
	d.Status = entity.DocketStatus(status)
	return &d, nil
}

// GetItems obtiene las líneas de un remito.
func (r *DocketRepo) GetItems(docketID string) ([]*entity.DocketItem, error) {
	query := `
		SELECT id, docket_id, variant_id, product_id, quantity
		FROM docket_items WHERE docket_id = $1`
	rows, err := r.q.Query(context.Background(), query, docketID)
	if err != nil {
		return nil, fmt.Errorf("get docket items: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocketItem
	for rows.Next() {
		var it entity.DocketItem
		if err := rows.Scan(&it.ID, &it.DocketID, &it.VariantID, &it.ProductID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan docket item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// UpdateStatus aplica el avance de estado con compare-and-set sobre version:
// si la fila ya no tiene expectedVersion, otro escritor se adelantó y se
// devuelve ErrConcurrentModification sin tocar nada.
func (r *DocketRepo) UpdateStatus(id string, status entity.DocketStatus, expectedVersion int) error {
	query := `
		UPDATE dockets
		SET status = $2, version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $3`
	tag, err := r.q.Exec(context.Background(), query, id, string(status), expectedVersion)
	if err != nil {
		return fmt.Errorf("update docket status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConcurrentModification
	}
	return nil
}

// ReplaceItems reemplaza todas las líneas del remito (borra e inserta).
func (r *DocketRepo) ReplaceItems(docketID string, items []*entity.DocketItem) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM docket_items WHERE docket_id = $1`, docketID); err != nil {
		return fmt.Errorf("delete docket items: %w", err)
	}
	for _, it := range items {
		if err := r.insertItem(it); err != nil {
			return err
		}
	}
	return nil
}

// Delete elimina el remito y sus líneas.
func (r *DocketRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM docket_items WHERE docket_id = $1`, id); err != nil {
		return fmt.Errorf("delete docket items: %w", err)
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM dockets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete docket: %w", err)
	}
	return nil
}

// ListByWarehouse lista remitos, más recientes primero. Con warehouseID
// vacío lista todas las bodegas.
func (r *DocketRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Docket, error) {
	query := `
		SELECT ` + docketColumns + `
		FROM dockets WHERE ($1 = '' OR warehouse_id::text = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list dockets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Docket
	for rows.Next() {
		var d entity.Docket
		var docketType, status string
		if err := rows.Scan(&d.ID, &d.Code, &docketType, &status, &d.WarehouseID,
			&d.ReasonID, &d.TransferID, &d.Version, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan docket: %w", err)
		}
		d.Type = entity.DocketType(docketType)
		d.Status = entity.DocketStatus(status)
		list = append(list, &d)
	}
	return list, rows.Err()
}
