package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ReasonRepository define el puerto de persistencia para motivos de remito.
type ReasonRepository interface {
	Create(reason *entity.Reason) error
	GetByID(id string) (*entity.Reason, error)
	List(limit, offset int) ([]*entity.Reason, error)
}
