// Package stock contiene la proyección pura de saldos a partir del libro de
// movimientos. El saldo materializado en la base de datos debe poder
// reconstruirse replicando el libro desde cero; los tests verifican esa
// equivalencia.
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// Key identifica una tripleta de saldo.
type Key struct {
	ProductID   string
	WarehouseID string
	LocationID  string
}

// Replay reconstruye los saldos por tripleta aplicando los movimientos en
// orden sobre un estado vacío. Regla por registro:
//
//   - ambos endpoints presentes (transfer): se resta QuantityChange en el
//     origen y se suma en el destino.
//   - solo To* (receipt, adjustment positivo): se suma QuantityChange.
//   - solo From* (delivery, adjustment negativo): se suma QuantityChange,
//     que ya viene con signo negativo.
//
// El resultado puede contener tripletas en cero (las filas nunca se borran).
func Replay(movements []entity.StockMovement) map[Key]decimal.Decimal {
	balances := make(map[Key]decimal.Decimal)
	for _, m := range movements {
		hasFrom := m.FromLocationID != ""
		hasTo := m.ToLocationID != ""
		switch {
		case hasFrom && hasTo:
			from := Key{m.ProductID, m.WarehouseID, m.FromLocationID}
			toWarehouse := m.ToWarehouseID
			if toWarehouse == "" {
				toWarehouse = m.WarehouseID
			}
			to := Key{m.ProductID, toWarehouse, m.ToLocationID}
			balances[from] = balances[from].Sub(m.QuantityChange)
			balances[to] = balances[to].Add(m.QuantityChange)
		case hasTo:
			to := Key{m.ProductID, m.WarehouseID, m.ToLocationID}
			balances[to] = balances[to].Add(m.QuantityChange)
		case hasFrom:
			from := Key{m.ProductID, m.WarehouseID, m.FromLocationID}
			balances[from] = balances[from].Add(m.QuantityChange)
		}
	}
	return balances
}

// TotalByProduct suma los saldos de un producto a través de todas sus
// tripletas. Es la definición de totalStock del producto.
func TotalByProduct(balances map[Key]decimal.Decimal, productID string) decimal.Decimal {
	total := decimal.Zero
	for k, q := range balances {
		if k.ProductID == productID {
			total = total.Add(q)
		}
	}
	return total
}
