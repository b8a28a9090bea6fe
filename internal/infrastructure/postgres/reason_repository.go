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

var _ repository.ReasonRepository = (*ReasonRepo)(nil)

// ReasonRepo implementación del puerto ReasonRepository sobre PostgreSQL.
type ReasonRepo struct {
	q Querier
}

// NewReasonRepository construye el adaptador de persistencia para motivos.
func NewReasonRepository(q Querier) *ReasonRepo {
	return &ReasonRepo{q: q}
}

// Create persiste un nuevo motivo de remito.
func (r *ReasonRepo) Create(reason *entity.Reason) error {
	query := `INSERT INTO reasons (id, name, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, reason.ID, reason.Name, reason.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create reason: %w", err)
	}
	return nil
}

// GetByID obtiene un motivo por ID (nil si no existe).
func (r *ReasonRepo) GetByID(id string) (*entity.Reason, error) {
	query := `SELECT id, name, created_at FROM reasons WHERE id = $1`
	var reason entity.Reason
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&reason.ID, &reason.Name, &reason.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reason: %w", err)
	}
	return &reason, nil
}

// List lista motivos con paginación.
func (r *ReasonRepo) List(limit, offset int) ([]*entity.Reason, error) {
	query := `SELECT id, name, created_at FROM reasons ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reasons: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reason
	for rows.Next() {
		var reason entity.Reason
		if err := rows.Scan(&reason.ID, &reason.Name, &reason.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reason: %w", err)
		}
		list = append(list, &reason)
	}
	return list, rows.Err()
}
