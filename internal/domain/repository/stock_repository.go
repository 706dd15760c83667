package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// StockRepository define el puerto de persistencia para los saldos proyectados
// por (producto, bodega, ubicación).
type StockRepository interface {
	// Get devuelve el saldo de la tripleta; si no existe fila devuelve un
	// Stock en cero (la ausencia no es error).
	Get(productID, warehouseID, locationID string) (*entity.Stock, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(productID, warehouseID, locationID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	// ListByProduct devuelve las filas de saldo de un producto con nombres de
	// bodega/ubicación, ordenadas por bodega.
	ListByProduct(productID string) ([]*entity.StockByLocation, error)
	ListByWarehouse(warehouseID string) ([]*entity.StockByLocation, error)
	// TotalByProduct suma el saldo del producto en todas sus ubicaciones.
	TotalByProduct(productID string) (decimal.Decimal, error)
	// HasStock indica si la bodega o el producto tienen algún saldo distinto
	// de cero (chequeo previo a eliminar).
	HasStockInWarehouse(warehouseID string) (bool, error)
	HasStockForProduct(productID string) (bool, error)
}
