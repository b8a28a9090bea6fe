package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// DocketUseCase opera remitos de forma transaccional: creación con todas sus
// líneas, avance de estado unidireccional, reemplazo de líneas y borrado.
// Un remito COMPLETED es historial: no se modifica ni se borra.
type DocketUseCase struct {
	txRunner      TxRunner
	docketRepo    repository.DocketRepository
	warehouseRepo repository.WarehouseRepository
	reasonRepo    repository.ReasonRepository
	variantRepo   repository.VariantRepository
}

// NewDocketUseCase construye el caso de uso.
func NewDocketUseCase(
	txRunner TxRunner,
	docketRepo repository.DocketRepository,
	warehouseRepo repository.WarehouseRepository,
	reasonRepo repository.ReasonRepository,
	variantRepo repository.VariantRepository,
) *DocketUseCase {
	return &DocketUseCase{
		txRunner:      txRunner,
		docketRepo:    docketRepo,
		warehouseRepo: warehouseRepo,
		reasonRepo:    reasonRepo,
		variantRepo:   variantRepo,
	}
}

// CreateDocket valida y graba un remito nuevo con todas sus líneas en una
// sola transacción. Toda la validación ocurre antes de escribir: si algo
// falla no queda nada persistido.
func (uc *DocketUseCase) CreateDocket(ctx context.Context, in dto.CreateDocketRequest) (*dto.DocketResponse, error) {
	docketType, ok := entity.ParseDocketType(in.Type)
	if !ok {
		return nil, domain.ErrInvalidDocketRequest
	}
	if err := validateItems(in.Items); err != nil {
		return nil, err
	}
	if in.WarehouseID == "" || in.ReasonID == "" {
		return nil, domain.ErrInvalidDocketRequest
	}

	// Validar que bodega, motivo y variantes existan
	if err := uc.checkRefs(in.WarehouseID, in.ReasonID); err != nil {
		return nil, err
	}

	now := time.Now()
	docket := &entity.Docket{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Type:        docketType,
		Status:      entity.DocketStatusNew,
		WarehouseID: in.WarehouseID,
		ReasonID:    in.ReasonID,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if docket.Code == "" {
		docket.Code = generateCode("DK")
	}
	items, err := resolveItems(uc.variantRepo, docket.ID, in.Items)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(
		docketRepo repository.DocketRepository,
		_ repository.TransferRepository,
	) error {
		return docketRepo.Create(docket, items)
	})
	if err != nil {
		return nil, err
	}
	return toDocketResponse(docket, items), nil
}

// AdvanceDocketStatus avanza el estado de un remito suelto. Usa chequeo
// optimista de versión: si otro escritor avanzó el remito entre la lectura y
// el update, la operación falla con ErrConcurrentModification y nada cambia.
// Los remitos miembros de un traslado se avanzan por el traslado, no sueltos.
func (uc *DocketUseCase) AdvanceDocketStatus(ctx context.Context, docketID, newStatus string) (*dto.DocketResponse, error) {
	status, ok := entity.ParseDocketStatus(newStatus)
	if !ok {
		return nil, domain.ErrInvalidDocketRequest
	}

	var updated *entity.Docket
	err := uc.txRunner.Run(ctx, func(
		docketRepo repository.DocketRepository,
		_ repository.TransferRepository,
	) error {
		docket, err := docketRepo.GetByID(docketID)
		if err != nil {
			return err
		}
		if docket == nil {
			return domain.ErrNotFound
		}
		if docket.TransferID != nil {
			return domain.ErrConflict
		}
		if !entity.CanTransition(docket.Status, status) {
			return domain.ErrInvalidStatusTransition
		}
		if err := docketRepo.UpdateStatus(docket.ID, status, docket.Version); err != nil {
			return err
		}
		docket.Status = status
		docket.Version++
		docket.UpdatedAt = time.Now()
		updated = docket
		return nil
	})
	if err != nil {
		return nil, err
	}
	items, err := uc.docketRepo.GetItems(updated.ID)
	if err != nil {
		return nil, err
	}
	return toDocketResponse(updated, items), nil
}

// UpdateDocketItems reemplaza las líneas de un remito. Solo se permite en
// estado NEW: un remito PROCESSING ya está siendo preparado físicamente y
// uno COMPLETED es historial inmutable.
func (uc *DocketUseCase) UpdateDocketItems(ctx context.Context, docketID string, in dto.UpdateDocketItemsRequest) (*dto.DocketResponse, error) {
	if err := validateItems(in.Items); err != nil {
		return nil, err
	}
	items, err := resolveItems(uc.variantRepo, docketID, in.Items)
	if err != nil {
		return nil, err
	}

	var updated *entity.Docket
	err = uc.txRunner.Run(ctx, func(
		docketRepo repository.DocketRepository,
		_ repository.TransferRepository,
	) error {
		docket, err := docketRepo.GetForUpdate(docketID)
		if err != nil {
			return err
		}
		if docket == nil {
			return domain.ErrNotFound
		}
		if docket.Completed() {
			return domain.ErrDocketLocked
		}
		if docket.Status != entity.DocketStatusNew || docket.TransferID != nil {
			return domain.ErrConflict
		}
		if err := docketRepo.ReplaceItems(docketID, items); err != nil {
			return err
		}
		updated = docket
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDocketResponse(updated, items), nil
}

// DeleteDocket elimina un remito y sus líneas mientras no esté COMPLETED.
// Un remito completado ya movió stock: borrarlo falsearía el libro.
func (uc *DocketUseCase) DeleteDocket(ctx context.Context, docketID string) error {
	return uc.txRunner.Run(ctx, func(
		docketRepo repository.DocketRepository,
		_ repository.TransferRepository,
	) error {
		docket, err := docketRepo.GetForUpdate(docketID)
		if err != nil {
			return err
		}
		if docket == nil {
			return domain.ErrNotFound
		}
		if docket.Completed() {
			return domain.ErrDocketLocked
		}
		if docket.TransferID != nil {
			return domain.ErrConflict
		}
		return docketRepo.Delete(docketID)
	})
}

// GetDocket obtiene un remito con sus líneas.
func (uc *DocketUseCase) GetDocket(ctx context.Context, docketID string) (*dto.DocketResponse, error) {
	docket, err := uc.docketRepo.GetByID(docketID)
	if err != nil {
		return nil, err
	}
	if docket == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.docketRepo.GetItems(docketID)
	if err != nil {
		return nil, err
	}
	return toDocketResponse(docket, items), nil
}

// ListDockets lista remitos de una bodega con paginación (sin líneas).
func (uc *DocketUseCase) ListDockets(ctx context.Context, warehouseID string, limit, offset int) (*dto.DocketListResponse, error) {
	list, err := uc.docketRepo.ListByWarehouse(warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocketResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDocketResponse(d, nil))
	}
	return &dto.DocketListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// checkRefs valida que bodega y motivo existan.
func (uc *DocketUseCase) checkRefs(warehouseID, reasonID string) error {
	wh, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return err
	}
	if wh == nil {
		return domain.ErrNotFound
	}
	reason, err := uc.reasonRepo.GetByID(reasonID)
	if err != nil {
		return err
	}
	if reason == nil {
		return domain.ErrNotFound
	}
	return nil
}

// resolveItems deriva el ProductID de cada variante y arma las líneas.
func resolveItems(variantRepo repository.VariantRepository, docketID string, in []dto.DocketItemRequest) ([]*entity.DocketItem, error) {
	items := make([]*entity.DocketItem, 0, len(in))
	for _, it := range in {
		variant, err := variantRepo.GetByID(it.VariantID)
		if err != nil {
			return nil, err
		}
		if variant == nil {
			return nil, domain.ErrNotFound
		}
		items = append(items, &entity.DocketItem{
			ID:        uuid.New().String(),
			DocketID:  docketID,
			VariantID: variant.ID,
			ProductID: variant.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return items, nil
}

// validateItems exige al menos una línea y cantidades estrictamente positivas.
func validateItems(items []dto.DocketItemRequest) error {
	if len(items) == 0 {
		return domain.ErrInvalidDocketRequest
	}
	for _, it := range items {
		if it.VariantID == "" || it.Quantity <= 0 {
			return domain.ErrInvalidDocketRequest
		}
	}
	return nil
}

// generateCode genera un código legible con prefijo (DK-xxxxxxxx, TR-xxxxxxxx).
func generateCode(prefix string) string {
	return fmt.Sprintf("%s-%.8s", prefix, uuid.New().String())
}

func toDocketResponse(d *entity.Docket, items []*entity.DocketItem) *dto.DocketResponse {
	out := &dto.DocketResponse{
		ID:          d.ID,
		Code:        d.Code,
		Type:        string(d.Type),
		Status:      string(d.Status),
		WarehouseID: d.WarehouseID,
		ReasonID:    d.ReasonID,
		TransferID:  d.TransferID,
		Items:       make([]dto.DocketItemResponse, 0, len(items)),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.DocketItemResponse{
			ID:        it.ID,
			VariantID: it.VariantID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return out
}
