package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementResponse entrada del libro de movimientos.
type MovementResponse struct {
	ID                    string          `json:"id"`
	Timestamp             time.Time       `json:"timestamp"`
	ProductID             string          `json:"product_id"`
	ProductName           string          `json:"product_name"`
	ProductSKU            string          `json:"product_sku"`
	MovementType          string          `json:"movement_type"`
	WarehouseID           string          `json:"warehouse_id"`
	WarehouseName         string          `json:"warehouse_name"`
	FromLocationID        string          `json:"from_location_id,omitempty"`
	FromLocationName      string          `json:"from_location_name,omitempty"`
	ToWarehouseID         string          `json:"to_warehouse_id,omitempty"`
	ToWarehouseName       string          `json:"to_warehouse_name,omitempty"`
	ToLocationID          string          `json:"to_location_id,omitempty"`
	ToLocationName        string          `json:"to_location_name,omitempty"`
	QuantityChange        decimal.Decimal `json:"quantity_change"`
	ReferenceDocumentID   string          `json:"reference_document_id"`
	ReferenceDocumentType string          `json:"reference_document_type"`
	Notes                 string          `json:"notes,omitempty"`
}

// MovementListResponse listado paginado del libro.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// BalanceResponse saldo consultado. Con warehouse_id/location_id vacíos la
// cantidad agrega todas las ubicaciones del producto.
type BalanceResponse struct {
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id,omitempty"`
	LocationID  string          `json:"location_id,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// DashboardKPIsResponse contadores del tablero.
type DashboardKPIsResponse struct {
	TotalProducts      int `json:"total_products"`
	LowStockItems      int `json:"low_stock_items"`
	OutOfStockItems    int `json:"out_of_stock_items"`
	PendingReceipts    int `json:"pending_receipts"`
	PendingDeliveries  int `json:"pending_deliveries"`
	ScheduledTransfers int `json:"scheduled_transfers"`
}
