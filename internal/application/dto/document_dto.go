package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentLineRequest línea de receipt/delivery/transfer. Nombre, SKU y unidad
// del producto se resuelven y congelan al crear.
type DocumentLineRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// CreateDocumentRequest body compartido para crear documentos; el handler fija
// el tipo según la ruta y solo aplican los campos de esa variante.
type CreateDocumentRequest struct {
	Date  *time.Time `json:"date,omitempty"`
	Notes string     `json:"notes,omitempty"`

	// receipt / delivery
	SupplierName string `json:"supplier_name,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
	WarehouseID  string `json:"warehouse_id,omitempty"`

	// transfer
	FromWarehouseID string `json:"from_warehouse_id,omitempty"`
	FromLocationID  string `json:"from_location_id,omitempty"`
	ToWarehouseID   string `json:"to_warehouse_id,omitempty"`
	ToLocationID    string `json:"to_location_id,omitempty"`

	// adjustment
	ProductID       string          `json:"product_id,omitempty"`
	LocationID      string          `json:"location_id,omitempty"`
	Reason          string          `json:"reason,omitempty"`
	CountedQuantity decimal.Decimal `json:"counted_quantity,omitempty"`

	Lines []DocumentLineRequest `json:"lines,omitempty"`
}

// UpdateDocumentRequest body para PUT pre-done. Lines=nil conserva las líneas
// actuales; una lista (incluso vacía) las reemplaza completas.
type UpdateDocumentRequest struct {
	Date            *time.Time            `json:"date,omitempty"`
	Notes           *string               `json:"notes,omitempty"`
	SupplierName    *string               `json:"supplier_name,omitempty"`
	CustomerName    *string               `json:"customer_name,omitempty"`
	Reason          *string               `json:"reason,omitempty"`
	CountedQuantity *decimal.Decimal      `json:"counted_quantity,omitempty"`
	Lines           []DocumentLineRequest `json:"lines,omitempty"`
}

// TransitionRequest body para POST /:id/transition.
type TransitionRequest struct {
	Status string `json:"status"`
}

// DocumentLineResponse línea con snapshot de producto.
type DocumentLineResponse struct {
	ID            string           `json:"id"`
	ProductID     string           `json:"product_id"`
	ProductName   string           `json:"product_name"`
	ProductSKU    string           `json:"product_sku"`
	Quantity      decimal.Decimal  `json:"quantity"`
	UnitOfMeasure string           `json:"unit_of_measure"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
}

// DocumentResponse documento completo; los campos de variantes ajenas al tipo
// van vacíos y se omiten del JSON.
type DocumentResponse struct {
	ID          string    `json:"id"`
	ReferenceNo string    `json:"reference_no"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`

	SupplierName  string `json:"supplier_name,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
	WarehouseID   string `json:"warehouse_id,omitempty"`
	WarehouseName string `json:"warehouse_name,omitempty"`
	LocationID    string `json:"location_id,omitempty"`
	LocationName  string `json:"location_name,omitempty"`

	FromWarehouseID   string `json:"from_warehouse_id,omitempty"`
	FromWarehouseName string `json:"from_warehouse_name,omitempty"`
	FromLocationID    string `json:"from_location_id,omitempty"`
	FromLocationName  string `json:"from_location_name,omitempty"`
	ToWarehouseID     string `json:"to_warehouse_id,omitempty"`
	ToWarehouseName   string `json:"to_warehouse_name,omitempty"`
	ToLocationID      string `json:"to_location_id,omitempty"`
	ToLocationName    string `json:"to_location_name,omitempty"`

	ProductID       string           `json:"product_id,omitempty"`
	ProductName     string           `json:"product_name,omitempty"`
	ProductSKU      string           `json:"product_sku,omitempty"`
	Reason          string           `json:"reason,omitempty"`
	SystemQuantity  *decimal.Decimal `json:"system_quantity,omitempty"`
	CountedQuantity *decimal.Decimal `json:"counted_quantity,omitempty"`
	Difference      *decimal.Decimal `json:"difference,omitempty"`

	Lines     []DocumentLineResponse `json:"lines,omitempty"`
	Notes     string                 `json:"notes,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// DocumentListResponse listado paginado de documentos de un tipo.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
