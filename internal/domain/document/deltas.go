package document

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// StockDelta es el cambio firmado que un documento aplica sobre una tripleta
// (producto, bodega, ubicación) al confirmarse.
type StockDelta struct {
	ProductID   string
	WarehouseID string
	LocationID  string
	Quantity    decimal.Decimal
}

// Deltas calcula, de forma exhaustiva por variante, los deltas de saldo que
// implica confirmar el documento. Requiere los endpoints ya resueltos
// (LocationID / FromLocationID / ToLocationID): la resolución de ubicaciones
// primarias es responsabilidad del caso de uso, no de esta regla.
//
//   - receipt:    +cantidad por línea en (WarehouseID, LocationID).
//   - delivery:   −cantidad por línea en (WarehouseID, LocationID).
//   - transfer:   −cantidad en origen y +cantidad en destino por línea.
//   - adjustment: una sola delta con la diferencia firmada en
//     (WarehouseID, LocationID).
func Deltas(doc *entity.Document) ([]StockDelta, error) {
	switch doc.Type {
	case entity.DocReceipt:
		if doc.WarehouseID == "" || doc.LocationID == "" {
			return nil, domain.ErrInvalidInput
		}
		deltas := make([]StockDelta, 0, len(doc.Lines))
		for _, l := range doc.Lines {
			deltas = append(deltas, StockDelta{
				ProductID:   l.ProductID,
				WarehouseID: doc.WarehouseID,
				LocationID:  doc.LocationID,
				Quantity:    l.Quantity,
			})
		}
		return deltas, nil

	case entity.DocDelivery:
		if doc.WarehouseID == "" || doc.LocationID == "" {
			return nil, domain.ErrInvalidInput
		}
		deltas := make([]StockDelta, 0, len(doc.Lines))
		for _, l := range doc.Lines {
			deltas = append(deltas, StockDelta{
				ProductID:   l.ProductID,
				WarehouseID: doc.WarehouseID,
				LocationID:  doc.LocationID,
				Quantity:    l.Quantity.Neg(),
			})
		}
		return deltas, nil

	case entity.DocTransfer:
		if doc.FromWarehouseID == "" || doc.FromLocationID == "" ||
			doc.ToWarehouseID == "" || doc.ToLocationID == "" {
			return nil, domain.ErrInvalidInput
		}
		deltas := make([]StockDelta, 0, len(doc.Lines)*2)
		for _, l := range doc.Lines {
			deltas = append(deltas,
				StockDelta{
					ProductID:   l.ProductID,
					WarehouseID: doc.FromWarehouseID,
					LocationID:  doc.FromLocationID,
					Quantity:    l.Quantity.Neg(),
				},
				StockDelta{
					ProductID:   l.ProductID,
					WarehouseID: doc.ToWarehouseID,
					LocationID:  doc.ToLocationID,
					Quantity:    l.Quantity,
				},
			)
		}
		return deltas, nil

	case entity.DocAdjustment:
		if doc.ProductID == "" || doc.WarehouseID == "" || doc.LocationID == "" {
			return nil, domain.ErrInvalidInput
		}
		diff := doc.Difference()
		if diff.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		return []StockDelta{{
			ProductID:   doc.ProductID,
			WarehouseID: doc.WarehouseID,
			LocationID:  doc.LocationID,
			Quantity:    diff,
		}}, nil
	}
	return nil, domain.ErrInvalidInput
}

// MergeAndSort combina deltas que tocan la misma tripleta y ordena el
// resultado por (bodega, ubicación, producto). El orden fijo es el que luego
// usa la transacción para tomar los locks de fila sin riesgo de deadlock.
func MergeAndSort(deltas []StockDelta) []StockDelta {
	type key struct{ w, l, p string }
	merged := make(map[key]decimal.Decimal, len(deltas))
	for _, d := range deltas {
		k := key{d.WarehouseID, d.LocationID, d.ProductID}
		merged[k] = merged[k].Add(d.Quantity)
	}
	out := make([]StockDelta, 0, len(merged))
	for k, q := range merged {
		out = append(out, StockDelta{ProductID: k.p, WarehouseID: k.w, LocationID: k.l, Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WarehouseID != out[j].WarehouseID {
			return out[i].WarehouseID < out[j].WarehouseID
		}
		if out[i].LocationID != out[j].LocationID {
			return out[i].LocationID < out[j].LocationID
		}
		return out[i].ProductID < out[j].ProductID
	})
	return out
}

// BuildMovements construye las entradas del libro que implica confirmar el
// documento. La dirección (From/To) se decide aquí y en ningún otro lugar:
//
//   - receipt:    un registro por línea, solo To*, cantidad positiva.
//   - delivery:   un registro por línea, solo From*, cantidad negativa.
//   - transfer:   UN registro dual por línea con ambos endpoints y la cantidad
//     movida en positivo.
//   - adjustment: un único registro con la diferencia firmada; el endpoint
//     depende del signo.
//
// Los IDs quedan vacíos: los asigna el caso de uso al persistir.
func BuildMovements(doc *entity.Document, now time.Time, createdBy string) ([]entity.StockMovement, error) {
	base := entity.StockMovement{
		Timestamp:             now,
		ReferenceDocumentID:   doc.ID,
		ReferenceDocumentType: doc.Type,
		Notes:                 doc.Notes,
		CreatedBy:             createdBy,
	}

	switch doc.Type {
	case entity.DocReceipt:
		movs := make([]entity.StockMovement, 0, len(doc.Lines))
		for _, l := range doc.Lines {
			m := base
			m.MovementType = entity.MovementReceipt
			m.ProductID = l.ProductID
			m.ProductName = l.ProductName
			m.ProductSKU = l.ProductSKU
			m.WarehouseID = doc.WarehouseID
			m.WarehouseName = doc.WarehouseName
			m.ToLocationID = doc.LocationID
			m.ToLocationName = doc.LocationName
			m.QuantityChange = l.Quantity
			movs = append(movs, m)
		}
		return movs, nil

	case entity.DocDelivery:
		movs := make([]entity.StockMovement, 0, len(doc.Lines))
		for _, l := range doc.Lines {
			m := base
			m.MovementType = entity.MovementDelivery
			m.ProductID = l.ProductID
			m.ProductName = l.ProductName
			m.ProductSKU = l.ProductSKU
			m.WarehouseID = doc.WarehouseID
			m.WarehouseName = doc.WarehouseName
			m.FromLocationID = doc.LocationID
			m.FromLocationName = doc.LocationName
			m.QuantityChange = l.Quantity.Neg()
			movs = append(movs, m)
		}
		return movs, nil

	case entity.DocTransfer:
		movs := make([]entity.StockMovement, 0, len(doc.Lines))
		for _, l := range doc.Lines {
			m := base
			m.MovementType = entity.MovementTransfer
			m.ProductID = l.ProductID
			m.ProductName = l.ProductName
			m.ProductSKU = l.ProductSKU
			m.WarehouseID = doc.FromWarehouseID
			m.WarehouseName = doc.FromWarehouseName
			m.FromLocationID = doc.FromLocationID
			m.FromLocationName = doc.FromLocationName
			m.ToWarehouseID = doc.ToWarehouseID
			m.ToWarehouseName = doc.ToWarehouseName
			m.ToLocationID = doc.ToLocationID
			m.ToLocationName = doc.ToLocationName
			m.QuantityChange = l.Quantity
			movs = append(movs, m)
		}
		return movs, nil

	case entity.DocAdjustment:
		diff := doc.Difference()
		if diff.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		m := base
		m.MovementType = entity.MovementAdjustment
		m.ProductID = doc.ProductID
		m.ProductName = doc.ProductName
		m.ProductSKU = doc.ProductSKU
		m.WarehouseID = doc.WarehouseID
		m.WarehouseName = doc.WarehouseName
		m.QuantityChange = diff
		if diff.IsNegative() {
			m.FromLocationID = doc.LocationID
			m.FromLocationName = doc.LocationName
		} else {
			m.ToLocationID = doc.LocationID
			m.ToLocationName = doc.LocationName
		}
		return []entity.StockMovement{m}, nil
	}
	return nil, domain.ErrInvalidInput
}
