package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con
// pool o tx). La clave es (producto, bodega, ubicación).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de saldos. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el saldo de la tripleta. Sin fila devuelve un Stock en cero:
// un producto que nunca se movió por una ubicación tiene saldo cero ahí.
func (r *StockRepo) Get(productID, warehouseID, locationID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, location_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND warehouse_id = $2 AND location_id = $3`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID, warehouseID, locationID),
		productID, warehouseID, locationID, "get stock")
}

// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(productID, warehouseID, locationID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, location_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND warehouse_id = $2 AND location_id = $3
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID, warehouseID, locationID),
		productID, warehouseID, locationID, "get stock for update")
}

// Upsert inserta o actualiza el saldo de la tripleta.
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, warehouse_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (product_id, warehouse_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		stock.ProductID, stock.WarehouseID, stock.LocationID, stock.Quantity,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

const stockByLocationQuery = `
	SELECT s.product_id, s.warehouse_id, w.name, s.location_id, l.name, s.quantity
	FROM stock s
	JOIN warehouses w ON w.id = s.warehouse_id
	JOIN locations l ON l.id = s.location_id`

// ListByProduct devuelve las filas de saldo del producto con nombres,
// ordenadas por bodega y ubicación.
func (r *StockRepo) ListByProduct(productID string) ([]*entity.StockByLocation, error) {
	query := stockByLocationQuery + ` WHERE s.product_id = $1 ORDER BY w.name, l.name`
	return r.list(query, productID)
}

// ListByWarehouse devuelve todas las filas de saldo de la bodega.
func (r *StockRepo) ListByWarehouse(warehouseID string) ([]*entity.StockByLocation, error) {
	query := stockByLocationQuery + ` WHERE s.warehouse_id = $1 ORDER BY l.name, s.product_id`
	return r.list(query, warehouseID)
}

// TotalByProduct suma el saldo del producto en todas sus ubicaciones.
func (r *StockRepo) TotalByProduct(productID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM stock WHERE product_id = $1`,
		productID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total stock: %w", err)
	}
	return total, nil
}

// HasStockInWarehouse indica si la bodega tiene algún saldo distinto de cero.
func (r *StockRepo) HasStockInWarehouse(warehouseID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM stock WHERE warehouse_id = $1 AND quantity <> 0)`,
		warehouseID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has stock in warehouse: %w", err)
	}
	return exists, nil
}

// HasStockForProduct indica si el producto tiene algún saldo distinto de cero.
func (r *StockRepo) HasStockForProduct(productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM stock WHERE product_id = $1 AND quantity <> 0)`,
		productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has stock for product: %w", err)
	}
	return exists, nil
}

func (r *StockRepo) scanOne(row pgx.Row, productID, warehouseID, locationID, op string) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(&s.ProductID, &s.WarehouseID, &s.LocationID, &s.Quantity, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{
				ProductID:   productID,
				WarehouseID: warehouseID,
				LocationID:  locationID,
				Quantity:    decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

func (r *StockRepo) list(query string, arg any) ([]*entity.StockByLocation, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockByLocation
	for rows.Next() {
		var s entity.StockByLocation
		if err := rows.Scan(&s.ProductID, &s.WarehouseID, &s.WarehouseName,
			&s.LocationID, &s.LocationName, &s.Quantity); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
