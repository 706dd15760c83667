package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de inventario. Coinciden con el tipo del
// documento que los originó.
type MovementType string

const (
	MovementReceipt    MovementType = "receipt"
	MovementDelivery   MovementType = "delivery"
	MovementTransfer   MovementType = "transfer"
	MovementAdjustment MovementType = "adjustment"
)

// StockMovement es una entrada inmutable del libro de movimientos (append-only).
// Al menos uno de los endpoints (From*/To*) está presente:
//
//   - receipt:    solo To*, QuantityChange positiva.
//   - delivery:   solo From*, QuantityChange negativa.
//   - adjustment: From* si la diferencia es negativa, To* si es positiva;
//     QuantityChange lleva la diferencia firmada.
//   - transfer:   ambos endpoints en un único registro dual; QuantityChange es
//     la cantidad movida (positiva): se resta en From* y se suma en To*.
//
// Los nombres son snapshots al momento de confirmar el documento.
type StockMovement struct {
	ID        string
	Timestamp time.Time

	ProductID   string
	ProductName string
	ProductSKU  string

	MovementType MovementType

	WarehouseID   string // bodega de contexto (origen en transfer)
	WarehouseName string

	FromLocationID   string
	FromLocationName string
	ToWarehouseID    string // solo transfer entre bodegas distintas
	ToWarehouseName  string
	ToLocationID     string
	ToLocationName   string

	QuantityChange decimal.Decimal

	ReferenceDocumentID   string
	ReferenceDocumentType DocumentType

	Notes     string
	CreatedBy string
}
