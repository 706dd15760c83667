package document_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/document"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func receiptDoc() *entity.Document {
	return &entity.Document{
		ID:            "doc-1",
		Type:          entity.DocReceipt,
		WarehouseID:   "w1",
		WarehouseName: "Bodega Norte",
		LocationID:    "l1",
		LocationName:  "Muelle A",
		Lines: []entity.DocumentLine{
			{ProductID: "p1", ProductName: "Tornillo M4", ProductSKU: "TOR-M4", Quantity: qty(50)},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Dirección del movimiento por variante: receipt solo To, delivery solo From,
// transfer ambos, adjustment según el signo de la diferencia.
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildMovements_ReceiptSoloDestino(t *testing.T) {
	movs, err := document.BuildMovements(receiptDoc(), testNow, "u1")
	require.NoError(t, err)
	require.Len(t, movs, 1)

	m := movs[0]
	assert.Equal(t, entity.MovementReceipt, m.MovementType)
	assert.Empty(t, m.FromLocationID, "receipt no debe tener origen")
	assert.Equal(t, "l1", m.ToLocationID)
	assert.True(t, m.QuantityChange.Equal(qty(50)))
	assert.Equal(t, "doc-1", m.ReferenceDocumentID)
	assert.Equal(t, "TOR-M4", m.ProductSKU)
}

func TestBuildMovements_DeliverySoloOrigen(t *testing.T) {
	doc := receiptDoc()
	doc.Type = entity.DocDelivery
	movs, err := document.BuildMovements(doc, testNow, "u1")
	require.NoError(t, err)
	require.Len(t, movs, 1)

	m := movs[0]
	assert.Equal(t, entity.MovementDelivery, m.MovementType)
	assert.Equal(t, "l1", m.FromLocationID)
	assert.Empty(t, m.ToLocationID, "delivery no debe tener destino")
	assert.True(t, m.QuantityChange.Equal(qty(-50)), "la salida se registra en negativo")
}

// Transfer produce UN registro dual por línea, no dos registros.
func TestBuildMovements_TransferRegistroDual(t *testing.T) {
	doc := &entity.Document{
		ID:   "doc-2",
		Type: entity.DocTransfer,
		FromWarehouseID: "w1", FromWarehouseName: "Bodega Norte",
		FromLocationID: "l1", FromLocationName: "Estante 1",
		ToWarehouseID: "w2", ToWarehouseName: "Bodega Sur",
		ToLocationID: "l2", ToLocationName: "Estante 9",
		Lines: []entity.DocumentLine{{ProductID: "p1", Quantity: qty(20)}},
	}
	movs, err := document.BuildMovements(doc, testNow, "u1")
	require.NoError(t, err)
	require.Len(t, movs, 1, "una línea de transfer = un solo registro dual")

	m := movs[0]
	assert.Equal(t, entity.MovementTransfer, m.MovementType)
	assert.Equal(t, "w1", m.WarehouseID)
	assert.Equal(t, "l1", m.FromLocationID)
	assert.Equal(t, "w2", m.ToWarehouseID)
	assert.Equal(t, "l2", m.ToLocationID)
	assert.True(t, m.QuantityChange.Equal(qty(20)), "transfer lleva la cantidad movida en positivo")
}

func TestBuildMovements_AjusteNegativo(t *testing.T) {
	doc := &entity.Document{
		ID: "doc-3", Type: entity.DocAdjustment,
		ProductID: "p1", WarehouseID: "w1", LocationID: "l1",
		SystemQuantity: qty(50), CountedQuantity: qty(25),
	}
	movs, err := document.BuildMovements(doc, testNow, "u1")
	require.NoError(t, err)
	require.Len(t, movs, 1)

	m := movs[0]
	assert.Equal(t, entity.MovementAdjustment, m.MovementType)
	assert.True(t, m.QuantityChange.Equal(qty(-25)))
	assert.Equal(t, "l1", m.FromLocationID, "diferencia negativa sale de la ubicación")
	assert.Empty(t, m.ToLocationID)
}

func TestBuildMovements_AjustePositivo(t *testing.T) {
	doc := &entity.Document{
		ID: "doc-4", Type: entity.DocAdjustment,
		ProductID: "p1", WarehouseID: "w1", LocationID: "l1",
		SystemQuantity: qty(10), CountedQuantity: qty(17),
	}
	movs, err := document.BuildMovements(doc, testNow, "u1")
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.True(t, movs[0].QuantityChange.Equal(qty(7)))
	assert.Equal(t, "l1", movs[0].ToLocationID, "diferencia positiva entra a la ubicación")
	assert.Empty(t, movs[0].FromLocationID)
}

func TestBuildMovements_AjusteSinDiferencia(t *testing.T) {
	doc := &entity.Document{
		Type: entity.DocAdjustment, ProductID: "p1", WarehouseID: "w1", LocationID: "l1",
		SystemQuantity: qty(5), CountedQuantity: qty(5),
	}
	_, err := document.BuildMovements(doc, testNow, "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Deltas de saldo
// ──────────────────────────────────────────────────────────────────────────────

func TestDeltas_Receipt(t *testing.T) {
	deltas, err := document.Deltas(receiptDoc())
	require.NoError(t, err)
	require.Len(t, deltas, 1)
	assert.Equal(t, "w1", deltas[0].WarehouseID)
	assert.Equal(t, "l1", deltas[0].LocationID)
	assert.True(t, deltas[0].Quantity.Equal(qty(50)))
}

func TestDeltas_TransferDosDeltasPorLinea(t *testing.T) {
	doc := &entity.Document{
		Type:            entity.DocTransfer,
		FromWarehouseID: "w1", FromLocationID: "l1",
		ToWarehouseID: "w2", ToLocationID: "l2",
		Lines: []entity.DocumentLine{{ProductID: "p1", Quantity: qty(20)}},
	}
	deltas, err := document.Deltas(doc)
	require.NoError(t, err)
	require.Len(t, deltas, 2)
	assert.True(t, deltas[0].Quantity.Equal(qty(-20)))
	assert.True(t, deltas[1].Quantity.Equal(qty(20)))
}

// Un receipt sin ubicación resuelta no puede generar deltas: la resolución de
// la ubicación primaria ocurre antes, en el caso de uso.
func TestDeltas_EndpointSinResolver(t *testing.T) {
	doc := receiptDoc()
	doc.LocationID = ""
	_, err := document.Deltas(doc)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMergeAndSort_CombinaYOrdena(t *testing.T) {
	deltas := []document.StockDelta{
		{ProductID: "p2", WarehouseID: "w2", LocationID: "l1", Quantity: qty(5)},
		{ProductID: "p1", WarehouseID: "w1", LocationID: "l1", Quantity: qty(10)},
		{ProductID: "p1", WarehouseID: "w1", LocationID: "l1", Quantity: qty(-4)},
	}
	out := document.MergeAndSort(deltas)
	require.Len(t, out, 2, "las deltas de la misma tripleta se combinan")

	// Orden por (bodega, ubicación, producto): w1 antes que w2.
	assert.Equal(t, "w1", out[0].WarehouseID)
	assert.True(t, out[0].Quantity.Equal(qty(6)))
	assert.Equal(t, "w2", out[1].WarehouseID)
}
