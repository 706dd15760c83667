package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	GetByCode(code string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	// List devuelve las bodegas ordenadas por nombre; isActive=nil lista todas.
	List(isActive *bool) ([]*entity.Warehouse, error)
	Delete(id string) error
}

// LocationRepository define el puerto de persistencia para Location.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	ListByWarehouse(warehouseID string) ([]*entity.Location, error)
	Update(location *entity.Location) error
}
