package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/jhoicas/stockmaster-api/internal/application/stock"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type stubStockRepo struct {
	rows []*entity.StockByLocation
}

func (r *stubStockRepo) Get(productID, warehouseID, locationID string) (*entity.Stock, error) {
	for _, row := range r.rows {
		if row.ProductID == productID && row.WarehouseID == warehouseID && row.LocationID == locationID {
			return &entity.Stock{
				ProductID: productID, WarehouseID: warehouseID, LocationID: locationID,
				Quantity: row.Quantity,
			}, nil
		}
	}
	return &entity.Stock{ProductID: productID, WarehouseID: warehouseID, LocationID: locationID}, nil
}

func (r *stubStockRepo) GetForUpdate(productID, warehouseID, locationID string) (*entity.Stock, error) {
	return r.Get(productID, warehouseID, locationID)
}

func (r *stubStockRepo) Upsert(*entity.Stock) error { return nil }

func (r *stubStockRepo) ListByProduct(productID string) ([]*entity.StockByLocation, error) {
	var out []*entity.StockByLocation
	for _, row := range r.rows {
		if row.ProductID == productID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubStockRepo) ListByWarehouse(warehouseID string) ([]*entity.StockByLocation, error) {
	var out []*entity.StockByLocation
	for _, row := range r.rows {
		if row.WarehouseID == warehouseID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubStockRepo) TotalByProduct(productID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, row := range r.rows {
		if row.ProductID == productID {
			total = total.Add(row.Quantity)
		}
	}
	return total, nil
}

func (r *stubStockRepo) HasStockInWarehouse(string) (bool, error) { return false, nil }
func (r *stubStockRepo) HasStockForProduct(string) (bool, error)  { return false, nil }

type stubProductRepo struct {
	products map[string]*entity.Product
}

func (r *stubProductRepo) Create(*entity.Product) error { return nil }
func (r *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *stubProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) Update(*entity.Product) error             { return nil }
func (r *stubProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) Categories() ([]string, error) { return nil, nil }
func (r *stubProductRepo) Delete(string) error           { return nil }

type stubMovementRepo struct{}

func (stubMovementRepo) Create(*entity.StockMovement) error { return nil }
func (stubMovementRepo) List(repository.MovementFilter) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (stubMovementRepo) ListAll() ([]*entity.StockMovement, error) { return nil, nil }
func (stubMovementRepo) ExistsForProduct(string) (bool, error)     { return false, nil }
func (stubMovementRepo) ExistsForWarehouse(string) (bool, error)   { return false, nil }

func buildStockUC() *appstock.StockUseCase {
	stock := &stubStockRepo{rows: []*entity.StockByLocation{
		{ProductID: "p1", WarehouseID: "w1", WarehouseName: "Bodega Norte", LocationID: "l1", LocationName: "Muelle A", Quantity: decimal.NewFromInt(30)},
		{ProductID: "p1", WarehouseID: "w2", WarehouseName: "Bodega Sur", LocationID: "l2", LocationName: "Estante 9", Quantity: decimal.NewFromInt(20)},
		{ProductID: "p2", WarehouseID: "w1", WarehouseName: "Bodega Norte", LocationID: "l1", LocationName: "Muelle A", Quantity: decimal.NewFromInt(5)},
	}}
	products := &stubProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", SKU: "TOR-M4", Name: "Tornillo M4"},
		"p2": {ID: "p2", SKU: "TUE-M4", Name: "Tuerca M4"},
	}}
	return appstock.NewStockUseCase(stock, stubMovementRepo{}, products)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestByProduct_DesglosePorUbicacion(t *testing.T) {
	uc := buildStockUC()

	rows, err := uc.ByProduct("p1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bodega Norte", rows[0].WarehouseName)
	assert.True(t, rows[0].Quantity.Equal(decimal.NewFromInt(30)))
}

func TestByProduct_ProductoInexistente(t *testing.T) {
	uc := buildStockUC()

	_, err := uc.ByProduct("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestByWarehouse_SaldosDeLaBodega(t *testing.T) {
	uc := buildStockUC()

	rows, err := uc.ByWarehouse("w1")
	require.NoError(t, err)
	require.Len(t, rows, 2, "p1 y p2 tienen saldo en w1")
	for _, r := range rows {
		assert.Equal(t, "w1", r.WarehouseID)
	}
}

func TestBalance_AgregadoPorBodegaYTotal(t *testing.T) {
	uc := buildStockUC()

	porBodega, err := uc.Balance("p1", "w1", "")
	require.NoError(t, err)
	assert.True(t, porBodega.Quantity.Equal(decimal.NewFromInt(30)))

	total, err := uc.Balance("p1", "", "")
	require.NoError(t, err)
	assert.True(t, total.Quantity.Equal(decimal.NewFromInt(50)))

	// Tripleta sin fila: cero, nunca error.
	vacio, err := uc.Balance("p2", "w2", "l2")
	require.NoError(t, err)
	assert.True(t, vacio.Quantity.IsZero())
}
