package stock

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// AvailabilityUseCase consulta las métricas de disponibilidad de un producto
// o una variante. Lectura pura: un único statement contra el libro de
// movimientos y el pliegue en memoria, sin bloqueos.
type AvailabilityUseCase struct {
	ledgerRepo  repository.LedgerRepository
	productRepo repository.ProductRepository
	variantRepo repository.VariantRepository
}

// NewAvailabilityUseCase construye el caso de uso.
func NewAvailabilityUseCase(
	ledgerRepo repository.LedgerRepository,
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
) *AvailabilityUseCase {
	return &AvailabilityUseCase{
		ledgerRepo:  ledgerRepo,
		productRepo: productRepo,
		variantRepo: variantRepo,
	}
}

// ByProduct calcula la disponibilidad agregada de todas las variantes de un producto.
func (uc *AvailabilityUseCase) ByProduct(ctx context.Context, productID string) (*dto.AvailabilityResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.ledgerRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toAvailabilityResponse(ledger.Compute(entries)), nil
}

// ByVariant calcula la disponibilidad de una variante concreta.
func (uc *AvailabilityUseCase) ByVariant(ctx context.Context, variantID string) (*dto.AvailabilityResponse, error) {
	variant, err := uc.variantRepo.GetByID(variantID)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.ledgerRepo.ListByVariant(variantID)
	if err != nil {
		return nil, err
	}
	return toAvailabilityResponse(ledger.Compute(entries)), nil
}

func toAvailabilityResponse(a entity.Availability) *dto.AvailabilityResponse {
	return &dto.AvailabilityResponse{
		Inventory:          a.Inventory,
		WaitingForDelivery: a.WaitingForDelivery,
		CanBeSold:          a.CanBeSold,
		AreComing:          a.AreComing,
	}
}
