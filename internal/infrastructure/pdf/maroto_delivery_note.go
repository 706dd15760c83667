// Package pdf implementa la generación de la remisión de entrega en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Bodega de despacho  │  N° Remisión + Fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre                                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | SKU | Producto | Unidad                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRMAS: despachado por / recibido por                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stockmaster-api/internal/application/documents"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ documents.DeliveryNotePDFGenerator = (*MarotoDeliveryNoteGenerator)(nil)

// MarotoDeliveryNoteGenerator genera remisiones de entrega con Maroto v2.
type MarotoDeliveryNoteGenerator struct{}

// NewMarotoDeliveryNoteGenerator construye el generador.
func NewMarotoDeliveryNoteGenerator() *MarotoDeliveryNoteGenerator {
	return &MarotoDeliveryNoteGenerator{}
}

// GenerateDeliveryNote genera el PDF de la entrega y devuelve sus bytes.
func (g *MarotoDeliveryNoteGenerator) GenerateDeliveryNote(_ context.Context, doc *entity.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Remisión de entrega "+doc.ReferenceNo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(doc.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	if doc.Notes != "" {
		m.AddRows(notesRow(doc.Notes))
	}
	m.AddRows(line.NewRow(6))
	m.AddRows(signaturesRow())

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar remisión: %w", err)
	}
	return out.GetBytes(), nil
}

// headerRow: bodega de despacho (izq) y referencia + fecha (der).
func headerRow(doc *entity.Document) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(doc.WarehouseName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Bodega de despacho", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REMISIÓN DE ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(doc.ReferenceNo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+doc.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: cliente destinatario.
func customerRow(doc *entity.Document) core.Row {
	name := doc.PartnerName
	if name == "" {
		name = "—"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ENTREGAR A", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Right),
		h("SKU", 3, align.Left),
		h("Producto", 5, align.Left),
		h("Unidad", 2, align.Left),
	)
}

// tableLineRows: una fila por línea del documento.
func tableLineRows(lines []entity.DocumentLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				l.Quantity.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				l.ProductSKU,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.UnitOfMeasure,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

func notesRow(notes string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Observaciones: "+notes, props.Text{Size: 8, Color: colorGray, Top: 2}),
	))
}

// signaturesRow: líneas de firma para despacho y recibo.
func signaturesRow() core.Row {
	sig := func(label string) core.Col {
		return col.New(5).Add(
			text.New("_____________________________", props.Text{Size: 9, Top: 1, Align: align.Center}),
			text.New(label, props.Text{Size: 8, Top: 7, Align: align.Center, Color: colorGray}),
		)
	}
	return row.New(16).Add(
		sig("Despachado por"),
		col.New(2),
		sig("Recibido por"),
	)
}
