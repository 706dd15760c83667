package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Categories() ([]string, error) { return nil, nil }

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

// fakeStockRepo solo implementa lo que el caso de uso de catálogo consulta;
// las escrituras de saldo pertenecen al motor de documentos.
type fakeStockRepo struct {
	totals map[string]decimal.Decimal // productID → total
}

func (r *fakeStockRepo) Get(productID, warehouseID, locationID string) (*entity.Stock, error) {
	return &entity.Stock{ProductID: productID, WarehouseID: warehouseID, LocationID: locationID}, nil
}

func (r *fakeStockRepo) GetForUpdate(productID, warehouseID, locationID string) (*entity.Stock, error) {
	return r.Get(productID, warehouseID, locationID)
}

func (r *fakeStockRepo) Upsert(*entity.Stock) error { return nil }

func (r *fakeStockRepo) ListByProduct(productID string) ([]*entity.StockByLocation, error) {
	return nil, nil
}

func (r *fakeStockRepo) ListByWarehouse(warehouseID string) ([]*entity.StockByLocation, error) {
	return nil, nil
}

func (r *fakeStockRepo) TotalByProduct(productID string) (decimal.Decimal, error) {
	return r.totals[productID], nil
}

func (r *fakeStockRepo) HasStockInWarehouse(string) (bool, error) { return false, nil }

func (r *fakeStockRepo) HasStockForProduct(productID string) (bool, error) {
	return !r.totals[productID].IsZero(), nil
}

type fakeMovementRepo struct {
	productsInLedger map[string]bool
}

func (r *fakeMovementRepo) Create(*entity.StockMovement) error { return nil }

func (r *fakeMovementRepo) List(repository.MovementFilter) ([]*entity.StockMovement, error) {
	return nil, nil
}

func (r *fakeMovementRepo) ListAll() ([]*entity.StockMovement, error) { return nil, nil }

func (r *fakeMovementRepo) ExistsForProduct(productID string) (bool, error) {
	return r.productsInLedger[productID], nil
}

func (r *fakeMovementRepo) ExistsForWarehouse(string) (bool, error) { return false, nil }

func buildProductUC(products *fakeProductRepo, stock *fakeStockRepo, movements *fakeMovementRepo) *usecase.ProductUseCase {
	if stock == nil {
		stock = &fakeStockRepo{totals: map[string]decimal.Decimal{}}
	}
	if movements == nil {
		movements = &fakeMovementRepo{productsInLedger: map[string]bool{}}
	}
	return usecase.NewProductUseCase(products, stock, movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_SKUDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := buildProductUC(repo, nil, nil)

	_, err := uc.Create(dto.CreateProductRequest{SKU: "TOR-M4", Name: "Tornillo M4", UnitOfMeasure: "unidad"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{SKU: "TOR-M4", Name: "Otro tornillo", UnitOfMeasure: "unidad"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_CamposObligatorios(t *testing.T) {
	uc := buildProductUC(newFakeProductRepo(), nil, nil)

	cases := []dto.CreateProductRequest{
		{Name: "Sin SKU", UnitOfMeasure: "unidad"},
		{SKU: "X-1", UnitOfMeasure: "unidad"},
		{SKU: "X-1", Name: "Sin unidad"},
	}
	for _, in := range cases {
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	neg := decimal.NewFromInt(-5)
	_, err := uc.Create(dto.CreateProductRequest{
		SKU: "X-2", Name: "Nivel negativo", UnitOfMeasure: "unidad", ReorderLevel: &neg,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"reorder level negativo debe rechazarse")
}

func TestProductUpdate_SKUEsInmutable(t *testing.T) {
	repo := newFakeProductRepo()
	uc := buildProductUC(repo, nil, nil)

	created, err := uc.Create(dto.CreateProductRequest{SKU: "TOR-M4", Name: "Tornillo M4", UnitOfMeasure: "unidad"})
	require.NoError(t, err)

	nuevoNombre := "Tornillo M4 galvanizado"
	updated, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: &nuevoNombre})
	require.NoError(t, err)

	assert.Equal(t, "TOR-M4", updated.SKU, "el SKU no cambia en update")
	assert.Equal(t, nuevoNombre, updated.Name)
}

func TestProductDelete_ConSaldoRetornaConflict(t *testing.T) {
	repo := newFakeProductRepo()
	stock := &fakeStockRepo{totals: map[string]decimal.Decimal{}}
	uc := buildProductUC(repo, stock, nil)

	created, err := uc.Create(dto.CreateProductRequest{SKU: "TOR-M4", Name: "Tornillo M4", UnitOfMeasure: "unidad"})
	require.NoError(t, err)

	stock.totals[created.ID] = decimal.NewFromInt(10)

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"un producto con saldo no puede eliminarse")
	assert.NotNil(t, repo.products[created.ID], "el producto sigue en el catálogo")
}

func TestProductDelete_ConHistorialRetornaConflict(t *testing.T) {
	repo := newFakeProductRepo()
	movements := &fakeMovementRepo{productsInLedger: map[string]bool{}}
	uc := buildProductUC(repo, nil, movements)

	created, err := uc.Create(dto.CreateProductRequest{SKU: "TOR-M4", Name: "Tornillo M4", UnitOfMeasure: "unidad"})
	require.NoError(t, err)

	// saldo actual cero, pero aparece en el libro de movimientos
	movements.productsInLedger[created.ID] = true

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"un producto con movimientos registrados no puede eliminarse")
}

func TestProductDelete_SinSaldoNiHistorial(t *testing.T) {
	repo := newFakeProductRepo()
	uc := buildProductUC(repo, nil, nil)

	created, err := uc.Create(dto.CreateProductRequest{SKU: "TOR-M4", Name: "Tornillo M4", UnitOfMeasure: "unidad"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	assert.Nil(t, repo.products[created.ID])

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
