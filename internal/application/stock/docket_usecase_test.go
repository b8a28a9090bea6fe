package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

func newDocketUC(f *fixtures) *stock.DocketUseCase {
	return stock.NewDocketUseCase(f.txRunner, f.dockets, f.warehouses, f.reasons, f.variants)
}

func validCreateRequest() dto.CreateDocketRequest {
	return dto.CreateDocketRequest{
		Type:        "IMPORT",
		WarehouseID: whCentral,
		ReasonID:    reasonBuy,
		Items: []dto.DocketItemRequest{
			{VariantID: variantA, Quantity: 10},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateDocket
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateDocket_OK(t *testing.T) {
	f := newFixtures()
	uc := newDocketUC(f)

	out, err := uc.CreateDocket(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "IMPORT", out.Type)
	assert.Equal(t, "NEW", out.Status, "todo remito nace en NEW")
	assert.NotEmpty(t, out.Code, "sin código dado se genera uno")
	require.Len(t, out.Items, 1)
	assert.Equal(t, productA, out.Items[0].ProductID, "el ProductID se deriva de la variante")
	assert.Len(t, f.dockets.dockets, 1, "el remito quedó persistido")
}

func TestCreateDocket_SinLineasFalla(t *testing.T) {
	f := newFixtures()
	uc := newDocketUC(f)

	in := validCreateRequest()
	in.Items = nil
	_, err := uc.CreateDocket(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrInvalidDocketRequest)
	assert.Empty(t, f.dockets.dockets, "la validación ocurre antes de escribir")
}

func TestCreateDocket_CantidadNoPositivaFalla(t *testing.T) {
	f := newFixtures()
	uc := newDocketUC(f)

	for _, qty := range []int64{0, -3} {
		in := validCreateRequest()
		in.Items[0].Quantity = qty
		_, err := uc.CreateDocket(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidDocketRequest)
	}
	assert.Empty(t, f.dockets.dockets)
}

func TestCreateDocket_TipoDesconocidoFalla(t *testing.T) {
	uc := newDocketUC(newFixtures())

	in := validCreateRequest()
	in.Type = "ADJUST"
	_, err := uc.CreateDocket(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrInvalidDocketRequest)
}

func TestCreateDocket_BodegaInexistenteFalla(t *testing.T) {
	f := newFixtures()
	uc := newDocketUC(f)

	in := validCreateRequest()
	in.WarehouseID = "wh-fantasma"
	_, err := uc.CreateDocket(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.dockets.dockets)
}

func TestCreateDocket_VarianteInexistenteFalla(t *testing.T) {
	f := newFixtures()
	uc := newDocketUC(f)

	in := validCreateRequest()
	in.Items[0].VariantID = "var-fantasma"
	_, err := uc.CreateDocket(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.dockets.dockets)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdvanceDocketStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestAdvanceDocketStatus_CicloCompleto(t *testing.T) {
	f := newFixtures()
	uc := newDocketUC(f)

	created, err := uc.CreateDocket(context.Background(), validCreateRequest())
	require.NoError(t, err)

	out, err := uc.AdvanceDocketStatus(context.Background(), created.ID, "PROCESSING")
	require.NoError(t, err)
	assert.Equal(t, "PROCESSING", out.Status)

	out, err = uc.AdvanceDocketStatus(context.Background(), created.ID, "COMPLETED")
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", out.Status)
}

func TestAdvanceDocketStatus_RetrocesoFalla(t *testing.T) {
	f := newFixtures()
	uc := newDocketUC(f)

	created, err := uc.CreateDocket(context.Background(), validCreateRequest())
	require.NoError(t, err)
	_, err = uc.AdvanceDocketStatus(context.Background(), created.ID, "COMPLETED")
	require.NoError(t, err)

	_, err = uc.AdvanceDocketStatus(context.Background(), created.ID, "NEW")
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	assert.Equal(t, entity.DocketStatusCompleted, f.dockets.dockets[created.ID].Status,
		"el estado no cambió tras el rechazo")
}

func TestAdvanceDocketStatus_EstadoDesconocidoFalla(t *testing.T) {
	f := newFixtures()
	uc := newDocketUC(f)
	created, err := uc.CreateDocket(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = uc.AdvanceDocketStatus(context.Background(), created.ID, "CANCELLED")
	assert.ErrorIs(t, err, domain.ErrInvalidDocketRequest)
}

func TestAdvanceDocketStatus_NoEncontrado(t *testing.T) {
	uc := newDocketUC(newFixtures())
	_, err := uc.AdvanceDocketStatus(context.Background(), "no-existe", "PROCESSING")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un escritor que se cuela entre la lectura y el update hace fallar el
// compare-and-set de versión: el caller recibe ErrConcurrentModification
// y debe reintentar, nunca se aplica una transición obsoleta.
func TestAdvanceDocketStatus_EscritorConcurrente(t *testing.T) {
	f := newFixtures()
	uc := newDocketUC(f)
	created, err := uc.CreateDocket(context.Background(), validCreateRequest())
	require.NoError(t, err)

	fired := false
	f.dockets.afterGet = func() {
		if fired {
			return
		}
		fired = true
		// Otro escritor avanza el remito entre nuestra lectura y nuestro update
		d := f.dockets.dockets[created.ID]
		d.Status = entity.DocketStatusProcessing
		d.Version++
	}

	_, err = uc.AdvanceDocketStatus(context.Background(), created.ID, "PROCESSING")
	assert.ErrorIs(t, err, domain.ErrConcurrentModification)
}

func TestAdvanceDocketStatus_MiembroDeTrasladoFalla(t *testing.T) {
	f := newFixtures()
	uc := newDocketUC(f)
	created, err := uc.CreateDocket(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// Simular que el remito pertenece a un traslado
	transferID := "tr-1"
	f.dockets.dockets[created.ID].TransferID = &transferID

	_, err = uc.AdvanceDocketStatus(context.Background(), created.ID, "PROCESSING")
	assert.ErrorIs(t, err, domain.ErrConflict,
		"los remitos de un traslado se avanzan por el traslado, no sueltos")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateDocketItems / DeleteDocket — candado de remito completado
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateDocketItems_SoloEnNew(t *testing.T) {
	f := newFixtures()
	uc := newDocketUC(f)
	created, err := uc.CreateDocket(context.Background(), validCreateRequest())
	require.NoError(t, err)

	out, err := uc.UpdateDocketItems(context.Background(), created.ID, dto.UpdateDocketItemsRequest{
		Items: []dto.DocketItemRequest{{VariantID: variantB, Quantity: 4}},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, variantB, out.Items[0].VariantID)

	_, err = uc.AdvanceDocketStatus(context.Background(), created.ID, "PROCESSING")
	require.NoError(t, err)
	_, err = uc.UpdateDocketItems(context.Background(), created.ID, dto.UpdateDocketItemsRequest{
		Items: []dto.DocketItemRequest{{VariantID: variantA, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrConflict, "en PROCESSING las líneas ya no se tocan")
}

func TestUpdateDocketItems_CompletadoFalla(t *testing.T) {
	f := newFixtures()
	uc := newDocketUC(f)
	created, err := uc.CreateDocket(context.Background(), validCreateRequest())
	require.NoError(t, err)
	_, err = uc.AdvanceDocketStatus(context.Background(), created.ID, "COMPLETED")
	require.NoError(t, err)

	_, err = uc.UpdateDocketItems(context.Background(), created.ID, dto.UpdateDocketItemsRequest{
		Items: []dto.DocketItemRequest{{VariantID: variantB, Quantity: 2}},
	})
	assert.ErrorIs(t, err, domain.ErrDocketLocked)
}

func TestDeleteDocket_AntesDeCompletarOK(t *testing.T) {
	f := newFixtures()
	uc := newDocketUC(f)
	created, err := uc.CreateDocket(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, uc.DeleteDocket(context.Background(), created.ID))
	assert.Empty(t, f.dockets.dockets)
	assert.Empty(t, f.dockets.items, "el borrado arrastra las líneas")
}

func TestDeleteDocket_CompletadoFalla(t *testing.T) {
	f := newFixtures()
	uc := newDocketUC(f)
	created, err := uc.CreateDocket(context.Background(), validCreateRequest())
	require.NoError(t, err)
	_, err = uc.AdvanceDocketStatus(context.Background(), created.ID, "COMPLETED")
	require.NoError(t, err)

	err = uc.DeleteDocket(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrDocketLocked, "un movimiento completado es historial")
	assert.Len(t, f.dockets.dockets, 1, "nada se borró")
}
