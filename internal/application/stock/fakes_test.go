package stock_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso. Devuelven copias (como haría la BD)
// y el txRunner restaura un snapshot si el callback falla, imitando Rollback.
// ──────────────────────────────────────────────────────────────────────────────

type memDocketRepo struct {
	dockets map[string]*entity.Docket
	items   map[string][]*entity.DocketItem
	// transferExists emula la FK dockets.transfer_id → transfers.id:
	// igual que PostgreSQL, rechaza un remito que referencia un traslado
	// todavía no grabado.
	transferExists func(id string) bool
	// afterGet permite a un test simular un escritor concurrente que se cuela
	// entre la lectura y el UpdateStatus.
	afterGet func()
}

var _ repository.DocketRepository = (*memDocketRepo)(nil)

func newMemDocketRepo() *memDocketRepo {
	return &memDocketRepo{
		dockets: make(map[string]*entity.Docket),
		items:   make(map[string][]*entity.DocketItem),
	}
}

func copyDocket(d *entity.Docket) *entity.Docket {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

func (r *memDocketRepo) Create(docket *entity.Docket, items []*entity.DocketItem) error {
	for _, existing := range r.dockets {
		if existing.Code == docket.Code {
			return domain.ErrDuplicate
		}
	}
	if docket.TransferID != nil && r.transferExists != nil && !r.transferExists(*docket.TransferID) {
		return fmt.Errorf("create docket: remito referencia un traslado inexistente (23503)")
	}
	r.dockets[docket.ID] = copyDocket(docket)
	stored := make([]*entity.DocketItem, 0, len(items))
	for _, it := range items {
		c := *it
		stored = append(stored, &c)
	}
	r.items[docket.ID] = stored
	return nil
}

func (r *memDocketRepo) GetByID(id string) (*entity.Docket, error) {
	d := copyDocket(r.dockets[id])
	if r.afterGet != nil {
		r.afterGet()
	}
	return d, nil
}

func (r *memDocketRepo) GetForUpdate(id string) (*entity.Docket, error) {
	return copyDocket(r.dockets[id]), nil
}

func (r *memDocketRepo) GetItems(docketID string) ([]*entity.DocketItem, error) {
	out := make([]*entity.DocketItem, 0, len(r.items[docketID]))
	for _, it := range r.items[docketID] {
		c := *it
		out = append(out, &c)
	}
	return out, nil
}

func (r *memDocketRepo) UpdateStatus(id string, status entity.DocketStatus, expectedVersion int) error {
	d, ok := r.dockets[id]
	if !ok {
		return domain.ErrNotFound
	}
	if d.Version != expectedVersion {
		return domain.ErrConcurrentModification
	}
	d.Status = status
	d.Version++
	d.UpdatedAt = time.Now()
	return nil
}

func (r *memDocketRepo) ReplaceItems(docketID string, items []*entity.DocketItem) error {
	stored := make([]*entity.DocketItem, 0, len(items))
	for _, it := range items {
		c := *it
		stored = append(stored, &c)
	}
	r.items[docketID] = stored
	return nil
}

func (r *memDocketRepo) Delete(id string) error {
	delete(r.dockets, id)
	delete(r.items, id)
	return nil
}

func (r *memDocketRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Docket, error) {
	var out []*entity.Docket
	for _, d := range r.dockets {
		if warehouseID == "" || d.WarehouseID == warehouseID {
			out = append(out, copyDocket(d))
		}
	}
	return out, nil
}

type memTransferRepo struct {
	rows    map[string]*repository.TransferRow
	times   map[string][2]time.Time // [created_at, updated_at]
	dockets *memDocketRepo
}

var _ repository.TransferRepository = (*memTransferRepo)(nil)

func newMemTransferRepo(dockets *memDocketRepo) *memTransferRepo {
	return &memTransferRepo{
		rows:    make(map[string]*repository.TransferRow),
		times:   make(map[string][2]time.Time),
		dockets: dockets,
	}
}

func (r *memTransferRepo) Create(row *repository.TransferRow) error {
	for _, existing := range r.rows {
		if existing.Code == row.Code {
			return domain.ErrDuplicate
		}
	}
	c := *row
	r.rows[row.ID] = &c
	now := time.Now()
	r.times[row.ID] = [2]time.Time{now, now}
	return nil
}

func (r *memTransferRepo) Touch(id string) error {
	ts, ok := r.times[id]
	if !ok {
		return nil
	}
	ts[1] = time.Now()
	r.times[id] = ts
	return nil
}

func (r *memTransferRepo) build(row *repository.TransferRow) *entity.Transfer {
	ts := r.times[row.ID]
	return &entity.Transfer{
		ID:           row.ID,
		Code:         row.Code,
		ExportDocket: copyDocket(r.dockets.dockets[row.ExportDocketID]),
		ImportDocket: copyDocket(r.dockets.dockets[row.ImportDocketID]),
		CreatedAt:    ts[0],
		UpdatedAt:    ts[1],
	}
}

func (r *memTransferRepo) GetByID(id string) (*entity.Transfer, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return r.build(row), nil
}

func (r *memTransferRepo) GetByCode(code string) (*entity.Transfer, error) {
	for _, row := range r.rows {
		if row.Code == code {
			return r.build(row), nil
		}
	}
	return nil, nil
}

func (r *memTransferRepo) Delete(id string) error {
	delete(r.rows, id)
	return nil
}

func (r *memTransferRepo) List(limit, offset int) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for _, row := range r.rows {
		out = append(out, r.build(row))
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback sobre los repos en memoria y, si falla,
// restaura el snapshot previo (imita el Rollback de una transacción real).
type fakeTxRunner struct {
	dockets   *memDocketRepo
	transfers *memTransferRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	docketRepo repository.DocketRepository,
	transferRepo repository.TransferRepository,
) error) error {
	snapDockets := make(map[string]*entity.Docket, len(f.dockets.dockets))
	for k, v := range f.dockets.dockets {
		snapDockets[k] = copyDocket(v)
	}
	snapItems := make(map[string][]*entity.DocketItem, len(f.dockets.items))
	for k, v := range f.dockets.items {
		items := make([]*entity.DocketItem, len(v))
		for i, it := range v {
			c := *it
			items[i] = &c
		}
		snapItems[k] = items
	}
	snapRows := make(map[string]*repository.TransferRow, len(f.transfers.rows))
	for k, v := range f.transfers.rows {
		c := *v
		snapRows[k] = &c
	}
	snapTimes := make(map[string][2]time.Time, len(f.transfers.times))
	for k, v := range f.transfers.times {
		snapTimes[k] = v
	}

	if err := fn(f.dockets, f.transfers); err != nil {
		f.dockets.dockets = snapDockets
		f.dockets.items = snapItems
		f.transfers.rows = snapRows
		f.transfers.times = snapTimes
		return err
	}
	return nil
}

type memWarehouseRepo struct{ byID map[string]*entity.Warehouse }

var _ repository.WarehouseRepository = (*memWarehouseRepo)(nil)

func (r *memWarehouseRepo) Create(w *entity.Warehouse) error { r.byID[w.ID] = w; return nil }
func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.byID[id], nil
}
func (r *memWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) { return nil, nil }

type memReasonRepo struct{ byID map[string]*entity.Reason }

var _ repository.ReasonRepository = (*memReasonRepo)(nil)

func (r *memReasonRepo) Create(reason *entity.Reason) error { r.byID[reason.ID] = reason; return nil }
func (r *memReasonRepo) GetByID(id string) (*entity.Reason, error) {
	return r.byID[id], nil
}
func (r *memReasonRepo) List(limit, offset int) ([]*entity.Reason, error) { return nil, nil }

type memVariantRepo struct{ byID map[string]*entity.Variant }

var _ repository.VariantRepository = (*memVariantRepo)(nil)

func (r *memVariantRepo) Create(v *entity.Variant) error { r.byID[v.ID] = v; return nil }
func (r *memVariantRepo) GetByID(id string) (*entity.Variant, error) {
	return r.byID[id], nil
}
func (r *memVariantRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Variant, error) {
	return nil, nil
}

type memProductRepo struct{ byID map[string]*entity.Product }

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(p *entity.Product) error { r.byID[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.byID[id], nil
}
func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Datos base compartidos por los tests
// ──────────────────────────────────────────────────────────────────────────────

const (
	whCentral = "wh-central"
	whNorte   = "wh-norte"
	reasonBuy = "reason-compra"
	productA  = "prod-a"
	variantA  = "var-a"
	variantB  = "var-b"
)

type fixtures struct {
	dockets    *memDocketRepo
	transfers  *memTransferRepo
	txRunner   *fakeTxRunner
	warehouses *memWarehouseRepo
	reasons    *memReasonRepo
	variants   *memVariantRepo
	products   *memProductRepo
}

func newFixtures() *fixtures {
	dockets := newMemDocketRepo()
	transfers := newMemTransferRepo(dockets)
	dockets.transferExists = func(id string) bool {
		_, ok := transfers.rows[id]
		return ok
	}
	f := &fixtures{
		dockets:    dockets,
		transfers:  transfers,
		txRunner:   &fakeTxRunner{dockets: dockets, transfers: transfers},
		warehouses: &memWarehouseRepo{byID: make(map[string]*entity.Warehouse)},
		reasons:    &memReasonRepo{byID: make(map[string]*entity.Reason)},
		variants:   &memVariantRepo{byID: make(map[string]*entity.Variant)},
		products:   &memProductRepo{byID: make(map[string]*entity.Product)},
	}
	f.warehouses.byID[whCentral] = &entity.Warehouse{ID: whCentral, Name: "Bodega Central"}
	f.warehouses.byID[whNorte] = &entity.Warehouse{ID: whNorte, Name: "Bodega Norte"}
	f.reasons.byID[reasonBuy] = &entity.Reason{ID: reasonBuy, Name: "Compra"}
	f.products.byID[productA] = &entity.Product{ID: productA, SKU: "CAM-001", Name: "Camisa", Price: decimal.NewFromInt(50)}
	f.variants.byID[variantA] = &entity.Variant{ID: variantA, ProductID: productA, SKU: "CAM-001-M", Name: "Camisa M"}
	f.variants.byID[variantB] = &entity.Variant{ID: variantB, ProductID: productA, SKU: "CAM-001-L", Name: "Camisa L"}
	return f
}
