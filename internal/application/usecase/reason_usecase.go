package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ReasonUseCase casos de uso CRUD para motivos de remito.
type ReasonUseCase struct {
	repo repository.ReasonRepository
}

// NewReasonUseCase construye el caso de uso.
func NewReasonUseCase(repo repository.ReasonRepository) *ReasonUseCase {
	return &ReasonUseCase{repo: repo}
}

// Create crea un nuevo motivo.
func (uc *ReasonUseCase) Create(in dto.CreateReasonRequest) (*dto.ReasonResponse, error) {
	reason := &entity.Reason{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(reason); err != nil {
		return nil, err
	}
	return toReasonResponse(reason), nil
}

// GetByID obtiene un motivo por ID.
func (uc *ReasonUseCase) GetByID(id string) (*dto.ReasonResponse, error) {
	reason, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reason == nil {
		return nil, domain.ErrNotFound
	}
	return toReasonResponse(reason), nil
}

// List lista motivos con paginación.
func (uc *ReasonUseCase) List(limit, offset int) ([]dto.ReasonResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReasonResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReasonResponse(r))
	}
	return items, nil
}

func toReasonResponse(r *entity.Reason) *dto.ReasonResponse {
	return &dto.ReasonResponse{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt}
}
