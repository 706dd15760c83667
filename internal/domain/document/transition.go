// Package document contiene las reglas puras del ciclo de vida de documentos:
// la máquina de estados draft → waiting → ready → done/canceled y el cálculo
// de deltas de stock y movimientos por variante (servicio de dominio, sin
// dependencias de infraestructura).
package document

import (
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// transitions enumera las transiciones permitidas. done y canceled son
// terminales; "cualquier no-terminal → done/canceled" está expandido fila a
// fila para que la tabla sea exhaustiva y verificable por test.
var transitions = map[entity.DocumentStatus][]entity.DocumentStatus{
	entity.StatusDraft:    {entity.StatusWaiting, entity.StatusDone, entity.StatusCanceled},
	entity.StatusWaiting:  {entity.StatusReady, entity.StatusDone, entity.StatusCanceled},
	entity.StatusReady:    {entity.StatusDone, entity.StatusCanceled},
	entity.StatusDone:     {},
	entity.StatusCanceled: {},
}

// CanTransition valida el salto de estado contra la tabla. Devuelve
// ErrInvalidTransition para cualquier salto no listado (incluido el
// auto-salto al mismo estado).
func CanTransition(from, to entity.DocumentStatus) error {
	allowed, ok := transitions[from]
	if !ok {
		return domain.ErrInvalidTransition
	}
	for _, s := range allowed {
		if s == to {
			return nil
		}
	}
	return domain.ErrInvalidTransition
}

// ValidateContent verifica los requisitos de contenido para sacar un documento
// de draft (hacia waiting o directo a done):
//
//   - receipt/delivery/transfer: al menos una línea, todas con cantidad > 0.
//   - adjustment: cantidad contada distinta de la cantidad de sistema.
//
// Devuelve ErrInvalidInput si no se cumplen.
func ValidateContent(doc *entity.Document) error {
	switch doc.Type {
	case entity.DocReceipt, entity.DocDelivery, entity.DocTransfer:
		if len(doc.Lines) == 0 {
			return domain.ErrInvalidInput
		}
		for _, l := range doc.Lines {
			if !l.Quantity.IsPositive() {
				return domain.ErrInvalidInput
			}
		}
		return nil
	case entity.DocAdjustment:
		if doc.Difference().IsZero() {
			return domain.ErrInvalidInput
		}
		return nil
	}
	return domain.ErrInvalidInput
}

// IsMutable indica si el documento todavía admite edición de campos y líneas.
// Una vez done o canceled el documento es de solo lectura.
func IsMutable(status entity.DocumentStatus) bool {
	return !status.IsTerminal()
}
