package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// ProductFilter filtros del listado de productos. Search se compara contra el
// texto normalizado (nombre + SKU, sin tildes ni mayúsculas).
type ProductFilter struct {
	Search      string
	Category    string
	WarehouseID string // productos con filas de stock en esa bodega
	Limit       int
	Offset      int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(filter ProductFilter) ([]*entity.Product, error)
	Categories() ([]string, error)
	Delete(id string) error
}
