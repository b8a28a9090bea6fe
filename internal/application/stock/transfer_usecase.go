package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TransferUseCase coordina traslados entre bodegas: un remito EXPORT en la
// bodega origen más un remito IMPORT en la destino, creados y avanzados como
// una sola unidad atómica. Ambos lados deben mover exactamente el mismo
// multiconjunto (variante, cantidad).
type TransferUseCase struct {
	txRunner      TxRunner
	transferRepo  repository.TransferRepository
	docketRepo    repository.DocketRepository
	warehouseRepo repository.WarehouseRepository
	reasonRepo    repository.ReasonRepository
	variantRepo   repository.VariantRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	transferRepo repository.TransferRepository,
	docketRepo repository.DocketRepository,
	warehouseRepo repository.WarehouseRepository,
	reasonRepo repository.ReasonRepository,
	variantRepo repository.VariantRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:      txRunner,
		transferRepo:  transferRepo,
		docketRepo:    docketRepo,
		warehouseRepo: warehouseRepo,
		reasonRepo:    reasonRepo,
		variantRepo:   variantRepo,
	}
}

// CreateTransfer valida y graba el traslado completo (remito EXPORT, remito
// IMPORT y la fila de traslado) en una sola transacción: si cualquier parte
// falla no queda nada persistido.
func (uc *TransferUseCase) CreateTransfer(ctx context.Context, in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	if err := validateItems(in.Export.Items); err != nil {
		return nil, err
	}
	if err := validateItems(in.Import.Items); err != nil {
		return nil, err
	}
	if in.Export.WarehouseID == "" || in.Import.WarehouseID == "" ||
		in.Export.ReasonID == "" || in.Import.ReasonID == "" {
		return nil, domain.ErrInvalidDocketRequest
	}
	if in.Export.WarehouseID == in.Import.WarehouseID {
		return nil, domain.ErrSameWarehouseTransfer
	}
	// Lo que sale de la bodega origen debe ser exactamente lo que entra en la destino
	if !balanced(in.Export.Items, in.Import.Items) {
		return nil, domain.ErrUnbalancedTransfer
	}

	for _, side := range []dto.TransferSideRequest{in.Export, in.Import} {
		if err := uc.checkSideRefs(side); err != nil {
			return nil, err
		}
	}

	code := in.Code
	if code == "" {
		code = generateCode("TR")
	}
	existing, err := uc.transferRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	transferID := uuid.New().String()
	exportDocket := uc.buildDocket(entity.DocketTypeExport, in.Export, transferID, now)
	importDocket := uc.buildDocket(entity.DocketTypeImport, in.Import, transferID, now)

	exportItems, err := resolveItems(uc.variantRepo, exportDocket.ID, in.Export.Items)
	if err != nil {
		return nil, err
	}
	importItems, err := resolveItems(uc.variantRepo, importDocket.ID, in.Import.Items)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(
		docketRepo repository.DocketRepository,
		transferRepo repository.TransferRepository,
	) error {
		// La fila del traslado va primero: los remitos la referencian por FK.
		if err := transferRepo.Create(&repository.TransferRow{
			ID:             transferID,
			Code:           code,
			ExportDocketID: exportDocket.ID,
			ImportDocketID: importDocket.ID,
		}); err != nil {
			return err
		}
		if err := docketRepo.Create(exportDocket, exportItems); err != nil {
			return err
		}
		return docketRepo.Create(importDocket, importItems)
	})
	if err != nil {
		return nil, err
	}

	transfer := &entity.Transfer{
		ID:           transferID,
		Code:         code,
		ExportDocket: exportDocket,
		ImportDocket: importDocket,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return uc.toTransferResponse(transfer, exportItems, importItems), nil
}

// AdvanceTransferStatus avanza ambos remitos miembros al nuevo estado en una
// sola transacción. Se bloquean las dos filas (siempre export primero, para
// evitar interbloqueos) y se validan ambas transiciones antes de escribir:
// o avanzan los dos remitos, o ninguno.
func (uc *TransferUseCase) AdvanceTransferStatus(ctx context.Context, transferID, newStatus string) (*dto.TransferResponse, error) {
	status, ok := entity.ParseDocketStatus(newStatus)
	if !ok {
		return nil, domain.ErrInvalidDocketRequest
	}

	err := uc.txRunner.Run(ctx, func(
		docketRepo repository.DocketRepository,
		transferRepo repository.TransferRepository,
	) error {
		transfer, err := transferRepo.GetByID(transferID)
		if err != nil {
			return err
		}
		if transfer == nil {
			return domain.ErrNotFound
		}
		exportDocket, err := docketRepo.GetForUpdate(transfer.ExportDocket.ID)
		if err != nil {
			return err
		}
		importDocket, err := docketRepo.GetForUpdate(transfer.ImportDocket.ID)
		if err != nil {
			return err
		}
		if exportDocket == nil || importDocket == nil {
			return domain.ErrNotFound
		}
		if !entity.CanTransition(exportDocket.Status, status) ||
			!entity.CanTransition(importDocket.Status, status) {
			return domain.ErrInvalidStatusTransition
		}
		if err := docketRepo.UpdateStatus(exportDocket.ID, status, exportDocket.Version); err != nil {
			return err
		}
		if err := docketRepo.UpdateStatus(importDocket.ID, status, importDocket.Version); err != nil {
			return err
		}
		return transferRepo.Touch(transferID)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetTransfer(ctx, transferID)
}

// DeleteTransfer elimina el traslado y sus dos remitos en cascada.
// Si cualquiera de los miembros está COMPLETED el traslado es historial
// y no se puede borrar.
func (uc *TransferUseCase) DeleteTransfer(ctx context.Context, transferID string) error {
	return uc.txRunner.Run(ctx, func(
		docketRepo repository.DocketRepository,
		transferRepo repository.TransferRepository,
	) error {
		transfer, err := transferRepo.GetByID(transferID)
		if err != nil {
			return err
		}
		if transfer == nil {
			return domain.ErrNotFound
		}
		exportDocket, err := docketRepo.GetForUpdate(transfer.ExportDocket.ID)
		if err != nil {
			return err
		}
		importDocket, err := docketRepo.GetForUpdate(transfer.ImportDocket.ID)
		if err != nil {
			return err
		}
		if (exportDocket != nil && exportDocket.Completed()) ||
			(importDocket != nil && importDocket.Completed()) {
			return domain.ErrDocketLocked
		}
		if err := transferRepo.Delete(transferID); err != nil {
			return err
		}
		if err := docketRepo.Delete(transfer.ExportDocket.ID); err != nil {
			return err
		}
		return docketRepo.Delete(transfer.ImportDocket.ID)
	})
}

// GetTransfer obtiene un traslado con ambos remitos y sus líneas.
func (uc *TransferUseCase) GetTransfer(ctx context.Context, transferID string) (*dto.TransferResponse, error) {
	transfer, err := uc.transferRepo.GetByID(transferID)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, domain.ErrNotFound
	}
	exportItems, err := uc.docketRepo.GetItems(transfer.ExportDocket.ID)
	if err != nil {
		return nil, err
	}
	importItems, err := uc.docketRepo.GetItems(transfer.ImportDocket.ID)
	if err != nil {
		return nil, err
	}
	return uc.toTransferResponse(transfer, exportItems, importItems), nil
}

// ListTransfers lista traslados con paginación (sin líneas).
func (uc *TransferUseCase) ListTransfers(ctx context.Context, limit, offset int) (*dto.TransferListResponse, error) {
	list, err := uc.transferRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *uc.toTransferResponse(t, nil, nil))
	}
	return &dto.TransferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *TransferUseCase) checkSideRefs(side dto.TransferSideRequest) error {
	wh, err := uc.warehouseRepo.GetByID(side.WarehouseID)
	if err != nil {
		return err
	}
	if wh == nil {
		return domain.ErrNotFound
	}
	reason, err := uc.reasonRepo.GetByID(side.ReasonID)
	if err != nil {
		return err
	}
	if reason == nil {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *TransferUseCase) buildDocket(t entity.DocketType, side dto.TransferSideRequest, transferID string, now time.Time) *entity.Docket {
	return &entity.Docket{
		ID:          uuid.New().String(),
		Code:        generateCode("DK"),
		Type:        t,
		Status:      entity.DocketStatusNew,
		WarehouseID: side.WarehouseID,
		ReasonID:    side.ReasonID,
		TransferID:  &transferID,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// balanced compara los multiconjuntos (variante → cantidad total) de ambos lados.
func balanced(export, imp []dto.DocketItemRequest) bool {
	sum := func(items []dto.DocketItemRequest) map[string]int64 {
		m := make(map[string]int64, len(items))
		for _, it := range items {
			m[it.VariantID] += it.Quantity
		}
		return m
	}
	exp, impSum := sum(export), sum(imp)
	if len(exp) != len(impSum) {
		return false
	}
	for variantID, qty := range exp {
		if impSum[variantID] != qty {
			return false
		}
	}
	return true
}

func (uc *TransferUseCase) toTransferResponse(t *entity.Transfer, exportItems, importItems []*entity.DocketItem) *dto.TransferResponse {
	return &dto.TransferResponse{
		ID:        t.ID,
		Code:      t.Code,
		Status:    string(t.Status()),
		Export:    *toDocketResponse(t.ExportDocket, exportItems),
		Import:    *toDocketResponse(t.ImportDocket, importItems),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
