package documents

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	domaindoc "github.com/jhoicas/stockmaster-api/internal/domain/document"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// validStatuses estados aceptados en el body de /transition.
var validStatuses = map[entity.DocumentStatus]bool{
	entity.StatusDraft:    true,
	entity.StatusWaiting:  true,
	entity.StatusReady:    true,
	entity.StatusDone:     true,
	entity.StatusCanceled: true,
}

// Transition mueve un documento a newStatus. Todas las transiciones salvo
// → done son puros cambios de estado; la transición a done es la ÚNICA con
// efectos de stock: valida las deltas como unidad, escribe el libro y
// actualiza los saldos dentro de una sola transacción (todo o nada).
func (uc *DocumentUseCase) Transition(ctx context.Context, id, newStatus, userID string) (*dto.DocumentResponse, error) {
	to := entity.DocumentStatus(newStatus)
	if !validStatuses[to] {
		return nil, domain.ErrInvalidInput
	}

	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if err := domaindoc.CanTransition(doc.Status, to); err != nil {
		return nil, err
	}
	if to == entity.StatusWaiting || to == entity.StatusDone {
		if err := domaindoc.ValidateContent(doc); err != nil {
			return nil, err
		}
	}

	now := time.Now()

	// waiting/ready/canceled: sin efecto de stock. El compare-and-swap sobre
	// el estado leído cubre la carrera con una confirmación concurrente: si
	// otra transacción llevó el documento a done entre la lectura y este
	// update, cero filas → ErrInvalidTransition y el done queda intacto.
	if to != entity.StatusDone {
		if err := uc.docRepo.UpdateStatus(id, doc.Status, to, now); err != nil {
			return nil, err
		}
		doc.Status = to
		doc.UpdatedAt = now
		return toDocumentResponse(doc), nil
	}

	if err := uc.commit(ctx, doc, now, userID); err != nil {
		return nil, err
	}
	doc.Status = entity.StatusDone
	doc.UpdatedAt = now
	return toDocumentResponse(doc), nil
}

// commit ejecuta la confirmación: resuelve endpoints, calcula deltas y
// movimientos en dominio, y dentro de la transacción bloquea filas en orden
// fijo, verifica que ningún saldo quede negativo y persiste todo junto.
func (uc *DocumentUseCase) commit(ctx context.Context, doc *entity.Document, now time.Time, userID string) error {
	if err := uc.resolveEndpoints(doc); err != nil {
		return err
	}

	deltas, err := domaindoc.Deltas(doc)
	if err != nil {
		return err
	}
	// Orden fijo por (bodega, ubicación, producto) antes de tomar locks:
	// dos confirmaciones concurrentes que toquen tripletas solapadas los
	// adquieren en el mismo orden y no pueden interbloquearse.
	merged := domaindoc.MergeAndSort(deltas)

	movements, err := domaindoc.BuildMovements(doc, now, userID)
	if err != nil {
		return err
	}

	err = uc.txRunner.Run(ctx, func(
		docRepo repository.DocumentRepository,
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error {
		// Bloquea la fila del documento y revalida el estado: otra
		// transacción pudo confirmarlo o cancelarlo mientras tanto.
		locked, err := docRepo.GetForUpdate(doc.ID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		if err := domaindoc.CanTransition(locked.Status, entity.StatusDone); err != nil {
			return err
		}

		for _, d := range merged {
			stock, err := stockRepo.GetForUpdate(d.ProductID, d.WarehouseID, d.LocationID)
			if err != nil {
				return err
			}
			newQty := stock.Quantity.Add(d.Quantity)
			if newQty.IsNegative() {
				return domain.ErrInsufficientStock
			}
			stock.Quantity = newQty
			stock.UpdatedAt = now
			if err := stockRepo.Upsert(stock); err != nil {
				return err
			}
		}

		for i := range movements {
			movements[i].ID = uuid.New().String()
			if err := movRepo.Create(&movements[i]); err != nil {
				return err
			}
		}

		return docRepo.UpdateStatus(doc.ID, locked.Status, entity.StatusDone, now)
	})
	if errors.Is(err, context.DeadlineExceeded) {
		// La transacción no llegó a commit: sin efecto parcial.
		return domain.ErrTimeout
	}
	return err
}

// resolveEndpoints completa las ubicaciones que el documento no fija
// explícitamente: receipt/delivery usan la ubicación primaria de su bodega y
// transfer hereda las primarias de origen/destino cuando faltan. Los nombres
// resueltos quedan como snapshot en el documento.
func (uc *DocumentUseCase) resolveEndpoints(doc *entity.Document) error {
	switch doc.Type {
	case entity.DocReceipt, entity.DocDelivery:
		if err := uc.verifyLineProducts(doc); err != nil {
			return err
		}
		if doc.LocationID == "" {
			loc, err := uc.primaryLocation(doc.WarehouseID)
			if err != nil {
				return err
			}
			doc.LocationID = loc.ID
			doc.LocationName = loc.Name
		}
		return nil

	case entity.DocTransfer:
		if err := uc.verifyLineProducts(doc); err != nil {
			return err
		}
		if doc.FromLocationID == "" {
			loc, err := uc.primaryLocation(doc.FromWarehouseID)
			if err != nil {
				return err
			}
			doc.FromLocationID = loc.ID
			doc.FromLocationName = loc.Name
		}
		if doc.ToLocationID == "" {
			loc, err := uc.primaryLocation(doc.ToWarehouseID)
			if err != nil {
				return err
			}
			doc.ToLocationID = loc.ID
			doc.ToLocationName = loc.Name
		}
		// Origen y destino resueltos no pueden coincidir.
		if doc.FromWarehouseID == doc.ToWarehouseID && doc.FromLocationID == doc.ToLocationID {
			return domain.ErrInvalidInput
		}
		return nil

	case entity.DocAdjustment:
		product, err := uc.productRepo.GetByID(doc.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		return nil
	}
	return domain.ErrInvalidInput
}

// verifyLineProducts re-verifica que los productos de las líneas sigan
// existiendo al confirmar (pudieron borrarse con el documento en draft).
func (uc *DocumentUseCase) verifyLineProducts(doc *entity.Document) error {
	for _, l := range doc.Lines {
		product, err := uc.productRepo.GetByID(l.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// primaryLocation devuelve la ubicación primaria de la bodega. Una bodega sin
// ubicaciones no puede recibir ni despachar: ErrConflict.
func (uc *DocumentUseCase) primaryLocation(warehouseID string) (*entity.Location, error) {
	wh, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	if wh.PrimaryLocationID == "" {
		return nil, domain.ErrConflict
	}
	loc, err := uc.locationRepo.GetByID(wh.PrimaryLocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrConflict
	}
	return loc, nil
}

// DeliveryNotePDF genera la remisión en PDF de una entrega.
func (uc *DocumentUseCase) DeliveryNotePDF(ctx context.Context, id string) ([]byte, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.Type != entity.DocDelivery {
		return nil, domain.ErrInvalidInput
	}
	return uc.pdfGen.GenerateDeliveryNote(ctx, doc)
}
