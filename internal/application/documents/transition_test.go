package documents_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/documents"
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El TxRunner clona documentos, saldos y libro antes de
// ejecutar fn y los restaura si fn falla: mismo contrato todo-o-nada que la
// transacción de PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type tripleKey struct{ p, w, l string }

type memStore struct {
	docs       map[string]*entity.Document
	stock      map[tripleKey]*entity.Stock
	movements  []*entity.StockMovement
	products   map[string]*entity.Product
	warehouses map[string]*entity.Warehouse
	locations  map[string]*entity.Location
	sequences  map[string]int
}

func newMemStore() *memStore {
	return &memStore{
		docs:       map[string]*entity.Document{},
		stock:      map[tripleKey]*entity.Stock{},
		products:   map[string]*entity.Product{},
		warehouses: map[string]*entity.Warehouse{},
		locations:  map[string]*entity.Location{},
		sequences:  map[string]int{},
	}
}

// ── DocumentRepository ────────────────────────────────────────────────────────

type memDocs struct{ s *memStore }

func (r memDocs) Create(doc *entity.Document) error {
	cp := *doc
	r.s.docs[doc.ID] = &cp
	return nil
}

func (r memDocs) GetByID(id string) (*entity.Document, error) {
	d, ok := r.s.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r memDocs) GetForUpdate(id string) (*entity.Document, error) { return r.GetByID(id) }

func (r memDocs) Update(doc *entity.Document) error {
	stored, ok := r.s.docs[doc.ID]
	if !ok || stored.Status != doc.Status {
		return domain.ErrInvalidTransition
	}
	cp := *doc
	r.s.docs[doc.ID] = &cp
	return nil
}

func (r memDocs) UpdateStatus(id string, from, to entity.DocumentStatus, updatedAt time.Time) error {
	d, ok := r.s.docs[id]
	if !ok || d.Status != from {
		return domain.ErrInvalidTransition
	}
	d.Status = to
	d.UpdatedAt = updatedAt
	return nil
}

func (r memDocs) List(filter repository.DocumentFilter) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range r.s.docs {
		if d.Type != filter.Type {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r memDocs) Delete(id string) error {
	delete(r.s.docs, id)
	return nil
}

// staleDocs sirve GetByID desde un snapshot congelado pero escribe contra el
// almacén real: reproduce una lectura que quedó vieja frente a una escritura
// concurrente que ya se confirmó.
type staleDocs struct {
	memDocs
	snapshot *entity.Document
}

func (r staleDocs) GetByID(id string) (*entity.Document, error) {
	if r.snapshot != nil && r.snapshot.ID == id {
		cp := *r.snapshot
		return &cp, nil
	}
	return r.memDocs.GetByID(id)
}

// ── StockRepository ───────────────────────────────────────────────────────────

type memStock struct{ s *memStore }

func (r memStock) get(productID, warehouseID, locationID string) *entity.Stock {
	k := tripleKey{productID, warehouseID, locationID}
	if row, ok := r.s.stock[k]; ok {
		cp := *row
		return &cp
	}
	return &entity.Stock{ProductID: productID, WarehouseID: warehouseID, LocationID: locationID, Quantity: decimal.Zero}
}

func (r memStock) Get(productID, warehouseID, locationID string) (*entity.Stock, error) {
	return r.get(productID, warehouseID, locationID), nil
}

func (r memStock) GetForUpdate(productID, warehouseID, locationID string) (*entity.Stock, error) {
	return r.get(productID, warehouseID, locationID), nil
}

func (r memStock) Upsert(stock *entity.Stock) error {
	cp := *stock
	r.s.stock[tripleKey{stock.ProductID, stock.WarehouseID, stock.LocationID}] = &cp
	return nil
}

func (r memStock) ListByProduct(productID string) ([]*entity.StockByLocation, error) {
	var out []*entity.StockByLocation
	for _, row := range r.s.stock {
		if row.ProductID == productID {
			out = append(out, &entity.StockByLocation{
				ProductID: row.ProductID, WarehouseID: row.WarehouseID,
				LocationID: row.LocationID, Quantity: row.Quantity,
			})
		}
	}
	return out, nil
}

func (r memStock) ListByWarehouse(string) ([]*entity.StockByLocation, error) { return nil, nil }

func (r memStock) TotalByProduct(productID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, row := range r.s.stock {
		if row.ProductID == productID {
			total = total.Add(row.Quantity)
		}
	}
	return total, nil
}

func (r memStock) HasStockInWarehouse(warehouseID string) (bool, error) {
	for _, row := range r.s.stock {
		if row.WarehouseID == warehouseID && !row.Quantity.IsZero() {
			return true, nil
		}
	}
	return false, nil
}

func (r memStock) HasStockForProduct(productID string) (bool, error) {
	for _, row := range r.s.stock {
		if row.ProductID == productID && !row.Quantity.IsZero() {
			return true, nil
		}
	}
	return false, nil
}

// ── StockMovementRepository ───────────────────────────────────────────────────

type memMovements struct{ s *memStore }

func (m memMovements) Create(mov *entity.StockMovement) error {
	// Mismo contrato de append que el adaptador real: sin endpoints o con
	// cantidad cero la entrada se rechaza.
	if mov.FromLocationID == "" && mov.ToLocationID == "" {
		return domain.ErrInvalidInput
	}
	if mov.QuantityChange.IsZero() {
		return domain.ErrInvalidInput
	}
	cp := *mov
	m.s.movements = append(m.s.movements, &cp)
	return nil
}

func (m memMovements) List(repository.MovementFilter) ([]*entity.StockMovement, error) {
	return m.s.movements, nil
}

func (m memMovements) ListAll() ([]*entity.StockMovement, error) { return m.s.movements, nil }

func (m memMovements) ExistsForProduct(productID string) (bool, error) {
	for _, mov := range m.s.movements {
		if mov.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (m memMovements) ExistsForWarehouse(warehouseID string) (bool, error) {
	for _, mov := range m.s.movements {
		if mov.WarehouseID == warehouseID || mov.ToWarehouseID == warehouseID {
			return true, nil
		}
	}
	return false, nil
}

// ── Catálogo y secuencias ─────────────────────────────────────────────────────

type memProducts struct{ s *memStore }

func (r memProducts) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r memProducts) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r memProducts) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (r memProducts) Update(*entity.Product) error             { return nil }
func (r memProducts) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (r memProducts) Categories() ([]string, error) { return nil, nil }
func (r memProducts) Delete(id string) error        { delete(r.s.products, id); return nil }

type memWarehouses struct{ s *memStore }

func (r memWarehouses) Create(w *entity.Warehouse) error { r.s.warehouses[w.ID] = w; return nil }
func (r memWarehouses) GetByID(id string) (*entity.Warehouse, error) {
	return r.s.warehouses[id], nil
}
func (r memWarehouses) GetByCode(string) (*entity.Warehouse, error) { return nil, nil }
func (r memWarehouses) Update(*entity.Warehouse) error              { return nil }
func (r memWarehouses) List(*bool) ([]*entity.Warehouse, error)     { return nil, nil }
func (r memWarehouses) Delete(string) error                         { return nil }

type memLocations struct{ s *memStore }

func (r memLocations) Create(l *entity.Location) error { r.s.locations[l.ID] = l; return nil }
func (r memLocations) GetByID(id string) (*entity.Location, error) {
	return r.s.locations[id], nil
}
func (r memLocations) ListByWarehouse(string) ([]*entity.Location, error) { return nil, nil }
func (r memLocations) Update(*entity.Location) error                      { return nil }

type memSequences struct{ s *memStore }

func (r memSequences) Next(prefix string, year int) (int, error) {
	k := fmt.Sprintf("%s-%d", prefix, year)
	r.s.sequences[k]++
	return r.s.sequences[k], nil
}

// ── TxRunner con rollback ─────────────────────────────────────────────────────

type memTxRunner struct{ s *memStore }

func (tx memTxRunner) Run(_ context.Context, fn func(
	docRepo repository.DocumentRepository,
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	// Snapshot para simular rollback.
	docsBackup := make(map[string]*entity.Document, len(tx.s.docs))
	for k, v := range tx.s.docs {
		cp := *v
		docsBackup[k] = &cp
	}
	stockBackup := make(map[tripleKey]*entity.Stock, len(tx.s.stock))
	for k, v := range tx.s.stock {
		cp := *v
		stockBackup[k] = &cp
	}
	movBackup := make([]*entity.StockMovement, len(tx.s.movements))
	copy(movBackup, tx.s.movements)

	if err := fn(memDocs{tx.s}, memStock{tx.s}, memMovements{tx.s}); err != nil {
		tx.s.docs = docsBackup
		tx.s.stock = stockBackup
		tx.s.movements = movBackup
		return err
	}
	return nil
}

type noPDF struct{}

func (noPDF) GenerateDeliveryNote(context.Context, *entity.Document) ([]byte, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func newFixture() (*documents.DocumentUseCase, *memStore) {
	s := newMemStore()
	s.products["p1"] = &entity.Product{ID: "p1", SKU: "TOR-M4", Name: "Tornillo M4", UnitOfMeasure: "und"}
	s.warehouses["w1"] = &entity.Warehouse{ID: "w1", Name: "Bodega Norte", Code: "NOR-01", PrimaryLocationID: "l1", IsActive: true}
	s.warehouses["w2"] = &entity.Warehouse{ID: "w2", Name: "Bodega Sur", Code: "SUR-01", PrimaryLocationID: "l2", IsActive: true}
	s.locations["l1"] = &entity.Location{ID: "l1", WarehouseID: "w1", Name: "Muelle A"}
	s.locations["l2"] = &entity.Location{ID: "l2", WarehouseID: "w2", Name: "Estante 9"}

	uc := documents.NewDocumentUseCase(
		memTxRunner{s}, memDocs{s}, memSequences{s},
		memProducts{s}, memWarehouses{s}, memLocations{s}, memStock{s}, noPDF{},
	)
	return uc, s
}

func seedStock(s *memStore, productID, warehouseID, locationID string, n int64) {
	s.stock[tripleKey{productID, warehouseID, locationID}] = &entity.Stock{
		ProductID: productID, WarehouseID: warehouseID, LocationID: locationID, Quantity: qty(n),
	}
}

func balance(s *memStore, productID, warehouseID, locationID string) decimal.Decimal {
	if row, ok := s.stock[tripleKey{productID, warehouseID, locationID}]; ok {
		return row.Quantity
	}
	return decimal.Zero
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario: receipt de 50 unidades draft → waiting → done.
// ──────────────────────────────────────────────────────────────────────────────

func TestTransition_ReceiptCompleto(t *testing.T) {
	uc, s := newFixture()
	ctx := context.Background()

	created, err := uc.Create(entity.DocReceipt, dto.CreateDocumentRequest{
		SupplierName: "Aceros del Norte",
		WarehouseID:  "w1",
		Lines:        []dto.DocumentLineRequest{{ProductID: "p1", Quantity: qty(50)}},
	})
	require.NoError(t, err)
	assert.Equal(t, "draft", created.Status)
	assert.Regexp(t, `^REC-\d{4}-\d{3}$`, created.ReferenceNo)

	_, err = uc.Transition(ctx, created.ID, "waiting", "u1")
	require.NoError(t, err)

	out, err := uc.Transition(ctx, created.ID, "done", "u1")
	require.NoError(t, err)
	assert.Equal(t, "done", out.Status)

	// Saldo +50 en la ubicación primaria de la bodega.
	assert.True(t, balance(s, "p1", "w1", "l1").Equal(qty(50)))

	// Exactamente un movimiento receipt con destino l1 y +50.
	require.Len(t, s.movements, 1)
	m := s.movements[0]
	assert.Equal(t, entity.MovementReceipt, m.MovementType)
	assert.Equal(t, "l1", m.ToLocationID)
	assert.Empty(t, m.FromLocationID)
	assert.True(t, m.QuantityChange.Equal(qty(50)))
	assert.Equal(t, created.ID, m.ReferenceDocumentID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario: transfer de 20 entre bodegas con saldo exacto.
// ──────────────────────────────────────────────────────────────────────────────

func TestTransition_TransferVaciaOrigen(t *testing.T) {
	uc, s := newFixture()
	ctx := context.Background()
	seedStock(s, "p1", "w1", "l1", 20)

	created, err := uc.Create(entity.DocTransfer, dto.CreateDocumentRequest{
		FromWarehouseID: "w1", FromLocationID: "l1",
		ToWarehouseID: "w2", ToLocationID: "l2",
		Lines: []dto.DocumentLineRequest{{ProductID: "p1", Quantity: qty(20)}},
	})
	require.NoError(t, err)

	_, err = uc.Transition(ctx, created.ID, "done", "u1")
	require.NoError(t, err)

	assert.True(t, balance(s, "p1", "w1", "l1").IsZero())
	assert.True(t, balance(s, "p1", "w2", "l2").Equal(qty(20)))

	require.Len(t, s.movements, 1, "una línea de transfer = un solo registro dual")
	m := s.movements[0]
	assert.Equal(t, "l1", m.FromLocationID)
	assert.Equal(t, "w2", m.ToWarehouseID)
	assert.Equal(t, "l2", m.ToLocationID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario: delivery de 30 con saldo 25 → InsufficientStock sin efecto alguno.
// ──────────────────────────────────────────────────────────────────────────────

func TestTransition_DeliveryStockInsuficiente(t *testing.T) {
	uc, s := newFixture()
	ctx := context.Background()
	seedStock(s, "p1", "w1", "l1", 25)

	created, err := uc.Create(entity.DocDelivery, dto.CreateDocumentRequest{
		CustomerName: "Ferretería Central",
		WarehouseID:  "w1",
		Lines:        []dto.DocumentLineRequest{{ProductID: "p1", Quantity: qty(30)}},
	})
	require.NoError(t, err)

	_, err = uc.Transition(ctx, created.ID, "done", "u1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Atomicidad: saldo intacto, libro vacío, documento sigue en draft.
	assert.True(t, balance(s, "p1", "w1", "l1").Equal(qty(25)))
	assert.Empty(t, s.movements)
	doc := s.docs[created.ID]
	assert.Equal(t, entity.StatusDraft, doc.Status)
}

// Varias líneas: si la última falla, las anteriores también se revierten.
func TestTransition_RollbackMultilinea(t *testing.T) {
	uc, s := newFixture()
	ctx := context.Background()
	s.products["p2"] = &entity.Product{ID: "p2", SKU: "TUE-M4", Name: "Tuerca M4", UnitOfMeasure: "und"}
	seedStock(s, "p1", "w1", "l1", 100)
	seedStock(s, "p2", "w1", "l1", 5)

	created, err := uc.Create(entity.DocDelivery, dto.CreateDocumentRequest{
		CustomerName: "Cliente X",
		WarehouseID:  "w1",
		Lines: []dto.DocumentLineRequest{
			{ProductID: "p1", Quantity: qty(10)},
			{ProductID: "p2", Quantity: qty(6)}, // insuficiente
		},
	})
	require.NoError(t, err)

	_, err = uc.Transition(ctx, created.ID, "done", "u1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, balance(s, "p1", "w1", "l1").Equal(qty(100)), "la línea buena también se revierte")
	assert.True(t, balance(s, "p2", "w1", "l1").Equal(qty(5)))
	assert.Empty(t, s.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario: ajuste 50 → 25 aplica −25.
// ──────────────────────────────────────────────────────────────────────────────

func TestTransition_AjusteNegativo(t *testing.T) {
	uc, s := newFixture()
	ctx := context.Background()
	seedStock(s, "p1", "w1", "l1", 50)

	created, err := uc.Create(entity.DocAdjustment, dto.CreateDocumentRequest{
		ProductID: "p1", WarehouseID: "w1", LocationID: "l1",
		Reason: "conteo físico", CountedQuantity: qty(25),
	})
	require.NoError(t, err)
	require.NotNil(t, created.SystemQuantity)
	assert.True(t, created.SystemQuantity.Equal(qty(50)), "la cantidad de sistema se congela al crear")

	_, err = uc.Transition(ctx, created.ID, "done", "u1")
	require.NoError(t, err)

	assert.True(t, balance(s, "p1", "w1", "l1").Equal(qty(25)))
	require.Len(t, s.movements, 1)
	assert.Equal(t, entity.MovementAdjustment, s.movements[0].MovementType)
	assert.True(t, s.movements[0].QuantityChange.Equal(qty(-25)))
	assert.Equal(t, "l1", s.movements[0].FromLocationID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inmutabilidad y transiciones inválidas
// ──────────────────────────────────────────────────────────────────────────────

func TestTransition_DocumentoDoneEsInmutable(t *testing.T) {
	uc, s := newFixture()
	ctx := context.Background()
	seedStock(s, "p1", "w1", "l1", 10)

	created, err := uc.Create(entity.DocDelivery, dto.CreateDocumentRequest{
		CustomerName: "Cliente", WarehouseID: "w1",
		Lines: []dto.DocumentLineRequest{{ProductID: "p1", Quantity: qty(5)}},
	})
	require.NoError(t, err)
	_, err = uc.Transition(ctx, created.ID, "done", "u1")
	require.NoError(t, err)

	// update rechazado
	notes := "editado"
	_, err = uc.Update(created.ID, dto.UpdateDocumentRequest{Notes: &notes})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// done → waiting rechazado
	_, err = uc.Transition(ctx, created.ID, "waiting", "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// done → done rechazado (no se duplican movimientos)
	_, err = uc.Transition(ctx, created.ID, "done", "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Len(t, s.movements, 1)
}

// staleFixture construye un segundo caso de uso sobre el mismo almacén cuyo
// repositorio de documentos devuelve snapshot en las lecturas: simula la
// petición que leyó el documento justo antes de que otra lo confirmara.
func staleFixture(s *memStore, snapshot *entity.Document) *documents.DocumentUseCase {
	return documents.NewDocumentUseCase(
		memTxRunner{s}, staleDocs{memDocs{s}, snapshot}, memSequences{s},
		memProducts{s}, memWarehouses{s}, memLocations{s}, memStock{s}, noPDF{},
	)
}

func TestTransition_CancelarConLecturaViejaNoPisaUnDone(t *testing.T) {
	uc, s := newFixture()
	ctx := context.Background()

	created, err := uc.Create(entity.DocReceipt, dto.CreateDocumentRequest{
		SupplierName: "Proveedor", WarehouseID: "w1",
		Lines: []dto.DocumentLineRequest{{ProductID: "p1", Quantity: qty(50)}},
	})
	require.NoError(t, err)
	_, err = uc.Transition(ctx, created.ID, "waiting", "u1")
	require.NoError(t, err)

	// Copia leída en waiting, antes de que la otra petición confirme.
	stale := *s.docs[created.ID]

	_, err = uc.Transition(ctx, created.ID, "done", "u1")
	require.NoError(t, err)
	require.Len(t, s.movements, 1)

	// La petición rezagada ve waiting y cree que cancelar es válido; el
	// compare-and-swap de estado la rechaza porque el almacenado ya es done.
	_, err = staleFixture(s, &stale).Transition(ctx, created.ID, "canceled", "u2")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	assert.Equal(t, entity.StatusDone, s.docs[created.ID].Status,
		"el documento confirmado conserva su estado")
	assert.Len(t, s.movements, 1, "el libro no se toca")
	assert.True(t, balance(s, "p1", "w1", "l1").Equal(qty(50)))
}

func TestUpdate_ConLecturaViejaNoEditaUnDone(t *testing.T) {
	uc, s := newFixture()
	ctx := context.Background()
	seedStock(s, "p1", "w1", "l1", 10)

	created, err := uc.Create(entity.DocDelivery, dto.CreateDocumentRequest{
		CustomerName: "Cliente", WarehouseID: "w1",
		Lines: []dto.DocumentLineRequest{{ProductID: "p1", Quantity: qty(5)}},
	})
	require.NoError(t, err)

	stale := *s.docs[created.ID] // leída en draft

	_, err = uc.Transition(ctx, created.ID, "done", "u1")
	require.NoError(t, err)

	notes := "editado tarde"
	_, err = staleFixture(s, &stale).Update(created.ID, dto.UpdateDocumentRequest{Notes: &notes})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	stored := s.docs[created.ID]
	assert.Equal(t, entity.StatusDone, stored.Status)
	assert.NotEqual(t, notes, stored.Notes, "la cabecera no se reescribe")
}

func TestTransition_CanceladoEsTerminal(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	created, err := uc.Create(entity.DocReceipt, dto.CreateDocumentRequest{
		SupplierName: "Proveedor", WarehouseID: "w1",
		Lines: []dto.DocumentLineRequest{{ProductID: "p1", Quantity: qty(5)}},
	})
	require.NoError(t, err)

	_, err = uc.Transition(ctx, created.ID, "canceled", "u1")
	require.NoError(t, err)

	_, err = uc.Transition(ctx, created.ID, "done", "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestTransition_WaitingSinLineas(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	created, err := uc.Create(entity.DocReceipt, dto.CreateDocumentRequest{
		SupplierName: "Proveedor", WarehouseID: "w1",
	})
	require.NoError(t, err)

	_, err = uc.Transition(ctx, created.ID, "waiting", "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransition_EstadoDesconocidoEnBody(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.Transition(context.Background(), "cualquiera", "archived", "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_SecuenciaDeReferencias(t *testing.T) {
	uc, _ := newFixture()
	year := time.Now().Year()

	first, err := uc.Create(entity.DocReceipt, dto.CreateDocumentRequest{WarehouseID: "w1"})
	require.NoError(t, err)
	second, err := uc.Create(entity.DocReceipt, dto.CreateDocumentRequest{WarehouseID: "w1"})
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("REC-%d-001", year), first.ReferenceNo)
	assert.Equal(t, fmt.Sprintf("REC-%d-002", year), second.ReferenceNo)
}

func TestCreate_LineaConCantidadCero(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.Create(entity.DocReceipt, dto.CreateDocumentRequest{
		WarehouseID: "w1",
		Lines:       []dto.DocumentLineRequest{{ProductID: "p1", Quantity: decimal.Zero}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_BodegaArchivada(t *testing.T) {
	uc, s := newFixture()
	s.warehouses["w1"].IsActive = false
	_, err := uc.Create(entity.DocReceipt, dto.CreateDocumentRequest{WarehouseID: "w1"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDelete_SoloEnDraft(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	created, err := uc.Create(entity.DocReceipt, dto.CreateDocumentRequest{
		WarehouseID: "w1",
		Lines:       []dto.DocumentLineRequest{{ProductID: "p1", Quantity: qty(1)}},
	})
	require.NoError(t, err)
	_, err = uc.Transition(ctx, created.ID, "waiting", "u1")
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrConflict)
}
