package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock es la fila proyectada de saldo por (producto, bodega, ubicación).
// Se crea de forma perezosa con el primer movimiento que toca la tripleta
// y nunca se borra (puede quedar en cero). Quantity nunca es negativa.
type Stock struct {
	ProductID   string
	WarehouseID string
	LocationID  string
	Quantity    decimal.Decimal
	UpdatedAt   time.Time
}

// StockByLocation es el modelo de lectura del saldo con nombres denormalizados,
// tal como lo consume el detalle de producto.
type StockByLocation struct {
	ProductID     string
	WarehouseID   string
	WarehouseName string
	LocationID    string
	LocationName  string
	Quantity      decimal.Decimal
}
