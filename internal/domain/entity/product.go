package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-bodega).
// El stock NO vive aquí: se proyecta por ubicación en la tabla stock y el
// total se deriva sumando esas filas (ver StockByLocation).
type Product struct {
	ID            string
	SKU           string // código único
	Name          string
	Category      string
	Description   string
	UnitOfMeasure string
	ReorderLevel  *decimal.Decimal // opcional: umbral de reposición
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
