package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento de inventario (variante etiquetada).
type DocumentType string

const (
	DocReceipt    DocumentType = "receipt"    // recepción de proveedor
	DocDelivery   DocumentType = "delivery"   // entrega a cliente
	DocTransfer   DocumentType = "transfer"   // traslado interno entre bodegas/ubicaciones
	DocAdjustment DocumentType = "adjustment" // ajuste de inventario físico
)

// Estados del ciclo de vida de un documento.
type DocumentStatus string

const (
	StatusDraft    DocumentStatus = "draft"
	StatusWaiting  DocumentStatus = "waiting"
	StatusReady    DocumentStatus = "ready"
	StatusDone     DocumentStatus = "done"
	StatusCanceled DocumentStatus = "canceled"
)

// RefPrefix devuelve el prefijo del número de referencia según el tipo.
func (t DocumentType) RefPrefix() string {
	switch t {
	case DocReceipt:
		return "REC"
	case DocDelivery:
		return "DEL"
	case DocTransfer:
		return "TRF"
	case DocAdjustment:
		return "ADJ"
	}
	return "DOC"
}

// IsTerminal indica si el estado no admite más transiciones.
func (s DocumentStatus) IsTerminal() bool {
	return s == StatusDone || s == StatusCanceled
}

// DocumentLine es una línea de receipt/delivery/transfer. Nombre y SKU del
// producto se guardan como snapshot: el historial no se re-resuelve si el
// producto cambia después.
type DocumentLine struct {
	ID            string
	DocumentID    string
	ProductID     string
	ProductName   string
	ProductSKU    string
	Quantity      decimal.Decimal // siempre > 0; el signo lo decide el tipo de documento
	UnitOfMeasure string
	UnitPrice     *decimal.Decimal
}

// Document es la variante etiquetada que unifica Receipt, DeliveryOrder,
// InternalTransfer y StockAdjustment bajo un mismo ciclo de vida. Type decide
// qué campos aplican:
//
//   - receipt:    PartnerName (proveedor), WarehouseID, Lines; LocationID se
//     resuelve a la ubicación primaria de la bodega al confirmar.
//   - delivery:   PartnerName (cliente), WarehouseID, Lines; LocationID igual.
//   - transfer:   FromWarehouseID/FromLocationID → ToWarehouseID/ToLocationID, Lines.
//   - adjustment: ProductID + WarehouseID + LocationID + Reason +
//     SystemQuantity/CountedQuantity (sin Lines).
//
// Los campos *Name son snapshots tomados al crear/confirmar; nunca se
// re-resuelven contra el registro vivo.
type Document struct {
	ID          string
	ReferenceNo string // <PREFIX>-<AÑO>-<seq>, asignado una sola vez al crear
	Type        DocumentType
	Status      DocumentStatus
	Date        time.Time

	PartnerName   string // proveedor (receipt) o cliente (delivery)
	WarehouseID   string
	WarehouseName string
	LocationID    string // endpoint resuelto para receipt/delivery; ubicación contada para adjustment
	LocationName  string

	FromWarehouseID   string
	FromWarehouseName string
	FromLocationID    string
	FromLocationName  string
	ToWarehouseID     string
	ToWarehouseName   string
	ToLocationID      string
	ToLocationName    string

	ProductID       string // solo adjustment
	ProductName     string
	ProductSKU      string
	Reason          string
	SystemQuantity  decimal.Decimal
	CountedQuantity decimal.Decimal

	Lines     []DocumentLine
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Difference es la cantidad firmada que un ajuste aplica al confirmarse.
func (d *Document) Difference() decimal.Decimal {
	return d.CountedQuantity.Sub(d.SystemQuantity)
}
