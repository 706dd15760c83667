package repository

import (
	"time"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// MovementFilter filtros del listado del libro de movimientos.
type MovementFilter struct {
	ProductID    string
	WarehouseID  string
	MovementType entity.MovementType
	From         *time.Time
	To           *time.Time
	Limit        int
	Offset       int
}

// StockMovementRepository define el puerto del libro de movimientos.
// Las entradas son inmutables: solo Create y lecturas, nunca update/delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// List devuelve movimientos por timestamp descendente; empates se
	// desempatan por orden de inserción.
	List(filter MovementFilter) ([]*entity.StockMovement, error)
	// ListAll devuelve el libro completo en orden de inserción (para replay).
	ListAll() ([]*entity.StockMovement, error)
	ExistsForProduct(productID string) (bool, error)
	ExistsForWarehouse(warehouseID string) (bool, error)
}
