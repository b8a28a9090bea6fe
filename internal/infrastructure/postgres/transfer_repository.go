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

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL (usable con pool o tx).
// Las lecturas resuelven ambos remitos miembros con un join explícito.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste la fila del traslado. Los remitos miembros ya deben existir
// en la misma transacción.
func (r *TransferRepo) Create(row *repository.TransferRow) error {
	query := `
		INSERT INTO transfers (id, code, export_docket_id, import_docket_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		row.ID, row.Code, row.ExportDocketID, row.ImportDocketID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create transfer: %w", err)
	}
	return nil
}

// Touch refresca updated_at del traslado; se llama en la misma transacción
// que avanza los remitos miembros.
func (r *TransferRepo) Touch(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`UPDATE transfers SET updated_at = now() WHERE id = $1`, id); err != nil {
		return fmt.Errorf("touch transfer: %w", err)
	}
	return nil
}

// transferSelect une el traslado con sus dos remitos (e = export, i = import).
const transferSelect = `
	SELECT t.id, t.code, t.created_at, t.updated_at,
	       e.id, e.code, e.type, e.status, e.warehouse_id, e.reason_id, e.transfer_id, e.version, e.created_at, e.updated_at,
	       i.id, i.code, i.type, i.status, i.warehouse_id, i.reason_id, i.transfer_id, i.version, i.created_at, i.updated_at
	FROM transfers t
	JOIN dockets e ON e.id = t.export_docket_id
	JOIN dockets i ON i.id = t.import_docket_id`

// GetByID obtiene un traslado con ambos remitos (nil si no existe).
func (r *TransferRepo) GetByID(id string) (*entity.Transfer, error) {
	return r.getOne(transferSelect+` WHERE t.id = $1`, id)
}

// GetByCode obtiene un traslado por código único (nil si no existe).
func (r *TransferRepo) GetByCode(code string) (*entity.Transfer, error) {
	return r.getOne(transferSelect+` WHERE t.code = $1`, code)
}

func (r *TransferRepo) getOne(query string, arg any) (*entity.Transfer, error) {
	t, err := scanTransfer(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return t, nil
}

func scanTransfer(row pgx.Row) (*entity.Transfer, error) {
	var t entity.Transfer
	var exp, imp entity.Docket
	var expType, expStatus, impType, impStatus string
	err := row.Scan(
		&t.ID, &t.Code, &t.CreatedAt, &t.UpdatedAt,
		&exp.ID, &exp.Code, &expType, &expStatus, &exp.WarehouseID, &exp.ReasonID,
		&exp.TransferID, &exp.Version, &exp.CreatedAt, &exp.UpdatedAt,
		&imp.ID, &imp.Code, &impType, &impStatus, &imp.WarehouseID, &imp.ReasonID,
		&imp.TransferID, &imp.Version, &imp.CreatedAt, &imp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	exp.Type, exp.Status = entity.DocketType(expType), entity.DocketStatus(expStatus)
	imp.Type, imp.Status = entity.DocketType(impType), entity.DocketStatus(impStatus)
	t.ExportDocket = &exp
	t.ImportDocket = &imp
	return &t, nil
}

// Delete elimina la fila del traslado (los remitos los borra el caso de uso).
func (r *TransferRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM transfers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete transfer: %w", err)
	}
	return nil
}

// List lista traslados, más recientes primero.
func (r *TransferRepo) List(limit, offset int) ([]*entity.Transfer, error) {
	query := transferSelect + ` ORDER BY t.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
