package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU           string           `json:"sku"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	Description   string           `json:"description,omitempty"`
	UnitOfMeasure string           `json:"unit_of_measure"`
	ReorderLevel  *decimal.Decimal `json:"reorder_level,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
// El SKU no se modifica después de crear.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Description   *string          `json:"description,omitempty"`
	UnitOfMeasure *string          `json:"unit_of_measure,omitempty"`
	ReorderLevel  *decimal.Decimal `json:"reorder_level,omitempty"`
}

// StockByLocationResponse saldo de un producto en una ubicación concreta.
type StockByLocationResponse struct {
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	LocationID    string          `json:"location_id"`
	LocationName  string          `json:"location_name"`
	Quantity      decimal.Decimal `json:"quantity"`
}

// ProductResponse producto con su stock derivado.
type ProductResponse struct {
	ID              string                    `json:"id"`
	SKU             string                    `json:"sku"`
	Name            string                    `json:"name"`
	Category        string                    `json:"category"`
	Description     string                    `json:"description,omitempty"`
	UnitOfMeasure   string                    `json:"unit_of_measure"`
	ReorderLevel    *decimal.Decimal          `json:"reorder_level,omitempty"`
	TotalStock      decimal.Decimal           `json:"total_stock"`
	StockByLocation []StockByLocationResponse `json:"stock_by_location"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

// ProductListResponse listado paginado.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
