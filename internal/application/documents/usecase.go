package documents

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	domaindoc "github.com/jhoicas/stockmaster-api/internal/domain/document"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// DocumentUseCase gestiona el ciclo de vida completo de los documentos de
// inventario (receipts, deliveries, transfers, adjustments): CRUD pre-done y
// la transición a done que confirma el stock.
type DocumentUseCase struct {
	txRunner      TxRunner
	docRepo       repository.DocumentRepository
	seqRepo       repository.SequenceRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	locationRepo  repository.LocationRepository
	stockRepo     repository.StockRepository
	pdfGen        DeliveryNotePDFGenerator
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	txRunner TxRunner,
	docRepo repository.DocumentRepository,
	seqRepo repository.SequenceRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
	stockRepo repository.StockRepository,
	pdfGen DeliveryNotePDFGenerator,
) *DocumentUseCase {
	return &DocumentUseCase{
		txRunner:      txRunner,
		docRepo:       docRepo,
		seqRepo:       seqRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		locationRepo:  locationRepo,
		stockRepo:     stockRepo,
		pdfGen:        pdfGen,
	}
}

// Create crea un documento en draft con su número de referencia definitivo.
// Valida referencias (producto/bodega/ubicación) y congela los snapshots de
// nombre/SKU en líneas y cabecera.
func (uc *DocumentUseCase) Create(docType entity.DocumentType, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}

	doc := &entity.Document{
		ID:        uuid.New().String(),
		Type:      docType,
		Status:    entity.StatusDraft,
		Date:      date,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch docType {
	case entity.DocReceipt, entity.DocDelivery:
		if in.WarehouseID == "" {
			return nil, domain.ErrInvalidInput
		}
		wh, err := uc.activeWarehouse(in.WarehouseID)
		if err != nil {
			return nil, err
		}
		doc.WarehouseID = wh.ID
		doc.WarehouseName = wh.Name
		if docType == entity.DocReceipt {
			doc.PartnerName = in.SupplierName
		} else {
			doc.PartnerName = in.CustomerName
		}
		lines, err := uc.buildLines(doc.ID, in.Lines)
		if err != nil {
			return nil, err
		}
		doc.Lines = lines

	case entity.DocTransfer:
		if in.FromWarehouseID == "" || in.ToWarehouseID == "" {
			return nil, domain.ErrInvalidInput
		}
		if in.FromWarehouseID == in.ToWarehouseID && in.FromLocationID == in.ToLocationID {
			return nil, domain.ErrInvalidInput
		}
		fromWh, err := uc.activeWarehouse(in.FromWarehouseID)
		if err != nil {
			return nil, err
		}
		toWh, err := uc.activeWarehouse(in.ToWarehouseID)
		if err != nil {
			return nil, err
		}
		doc.FromWarehouseID = fromWh.ID
		doc.FromWarehouseName = fromWh.Name
		doc.ToWarehouseID = toWh.ID
		doc.ToWarehouseName = toWh.Name
		if in.FromLocationID != "" {
			loc, err := uc.locationOf(in.FromLocationID, fromWh.ID)
			if err != nil {
				return nil, err
			}
			doc.FromLocationID = loc.ID
			doc.FromLocationName = loc.Name
		}
		if in.ToLocationID != "" {
			loc, err := uc.locationOf(in.ToLocationID, toWh.ID)
			if err != nil {
				return nil, err
			}
			doc.ToLocationID = loc.ID
			doc.ToLocationName = loc.Name
		}
		lines, err := uc.buildLines(doc.ID, in.Lines)
		if err != nil {
			return nil, err
		}
		doc.Lines = lines

	case entity.DocAdjustment:
		if in.ProductID == "" || in.WarehouseID == "" || in.LocationID == "" {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		wh, err := uc.activeWarehouse(in.WarehouseID)
		if err != nil {
			return nil, err
		}
		loc, err := uc.locationOf(in.LocationID, wh.ID)
		if err != nil {
			return nil, err
		}
		// La cantidad de sistema se congela al crear el ajuste: la diferencia
		// que se aplicará al confirmar es contra este snapshot, no contra el
		// saldo vivo del momento de la confirmación.
		current, err := uc.stockRepo.Get(in.ProductID, wh.ID, loc.ID)
		if err != nil {
			return nil, err
		}
		doc.ProductID = product.ID
		doc.ProductName = product.Name
		doc.ProductSKU = product.SKU
		doc.WarehouseID = wh.ID
		doc.WarehouseName = wh.Name
		doc.LocationID = loc.ID
		doc.LocationName = loc.Name
		doc.Reason = in.Reason
		doc.SystemQuantity = current.Quantity
		doc.CountedQuantity = in.CountedQuantity

	default:
		return nil, domain.ErrInvalidInput
	}

	refNo, err := uc.nextReference(docType, date)
	if err != nil {
		return nil, err
	}
	doc.ReferenceNo = refNo

	if err := uc.docRepo.Create(doc); err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// GetByID obtiene un documento (con líneas) por ID.
func (uc *DocumentUseCase) GetByID(id string) (*dto.DocumentResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return toDocumentResponse(doc), nil
}

// List lista documentos de un tipo con filtros de estado y bodega.
func (uc *DocumentUseCase) List(docType entity.DocumentType, status, warehouseID string, page dto.PageRequest) (*dto.DocumentListResponse, error) {
	page.DefaultPage()
	filter := repository.DocumentFilter{
		Type:        docType,
		Status:      entity.DocumentStatus(status),
		WarehouseID: warehouseID,
		Limit:       page.Limit,
		Offset:      page.Offset,
	}
	docs, err := uc.docRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		items = append(items, *toDocumentResponse(d))
	}
	return &dto.DocumentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update modifica un documento pre-done. Un documento done o canceled es
// inmutable: cualquier intento devuelve ErrInvalidTransition. El repositorio
// condiciona la escritura al estado leído, así una confirmación concurrente
// entre la lectura y la escritura también termina en ErrInvalidTransition.
func (uc *DocumentUseCase) Update(id string, in dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if !domaindoc.IsMutable(doc.Status) {
		return nil, domain.ErrInvalidTransition
	}

	if in.Date != nil {
		doc.Date = *in.Date
	}
	if in.Notes != nil {
		doc.Notes = *in.Notes
	}
	switch doc.Type {
	case entity.DocReceipt:
		if in.SupplierName != nil {
			doc.PartnerName = *in.SupplierName
		}
	case entity.DocDelivery:
		if in.CustomerName != nil {
			doc.PartnerName = *in.CustomerName
		}
	case entity.DocAdjustment:
		if in.Reason != nil {
			doc.Reason = *in.Reason
		}
		if in.CountedQuantity != nil {
			doc.CountedQuantity = *in.CountedQuantity
		}
	}
	if in.Lines != nil && doc.Type != entity.DocAdjustment {
		lines, err := uc.buildLines(doc.ID, in.Lines)
		if err != nil {
			return nil, err
		}
		doc.Lines = lines
	}
	doc.UpdatedAt = time.Now()

	if err := uc.docRepo.Update(doc); err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// Delete elimina un documento. Solo se admite en draft: borrar un documento
// confirmado dejaría huérfanas sus entradas del libro.
func (uc *DocumentUseCase) Delete(id string) error {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	if doc.Status != entity.StatusDraft {
		return domain.ErrConflict
	}
	return uc.docRepo.Delete(id)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

// nextReference genera <PREFIX>-<AÑO>-<seq> desde la tabla de secuencias.
// Se asigna una única vez, al crear; nunca se regenera.
func (uc *DocumentUseCase) nextReference(docType entity.DocumentType, date time.Time) (string, error) {
	prefix := docType.RefPrefix()
	seq, err := uc.seqRepo.Next(prefix, date.Year())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%03d", prefix, date.Year(), seq), nil
}

// buildLines resuelve cada producto y congela nombre/SKU/unidad en la línea.
// Cantidades no positivas se rechazan antes de cualquier efecto.
func (uc *DocumentUseCase) buildLines(docID string, in []dto.DocumentLineRequest) ([]entity.DocumentLine, error) {
	lines := make([]entity.DocumentLine, 0, len(in))
	for _, l := range in {
		if l.ProductID == "" || !l.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(l.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		lines = append(lines, entity.DocumentLine{
			ID:            uuid.New().String(),
			DocumentID:    docID,
			ProductID:     product.ID,
			ProductName:   product.Name,
			ProductSKU:    product.SKU,
			Quantity:      l.Quantity,
			UnitOfMeasure: product.UnitOfMeasure,
			UnitPrice:     l.UnitPrice,
		})
	}
	return lines, nil
}

// activeWarehouse resuelve una bodega y rechaza las archivadas: una bodega
// inactiva no acepta documentos nuevos.
func (uc *DocumentUseCase) activeWarehouse(id string) (*entity.Warehouse, error) {
	wh, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	if !wh.IsActive {
		return nil, domain.ErrConflict
	}
	return wh, nil
}

// locationOf resuelve una ubicación y verifica que pertenezca a la bodega.
func (uc *DocumentUseCase) locationOf(locationID, warehouseID string) (*entity.Location, error) {
	loc, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	if loc.WarehouseID != warehouseID {
		return nil, domain.ErrInvalidInput
	}
	return loc, nil
}

// toDocumentResponse mapea la variante al DTO, proyectando PartnerName al
// campo del tipo correspondiente.
func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	if d == nil {
		return nil
	}
	resp := &dto.DocumentResponse{
		ID:          d.ID,
		ReferenceNo: d.ReferenceNo,
		Type:        string(d.Type),
		Status:      string(d.Status),
		Date:        d.Date,

		WarehouseID:   d.WarehouseID,
		WarehouseName: d.WarehouseName,
		LocationID:    d.LocationID,
		LocationName:  d.LocationName,

		FromWarehouseID:   d.FromWarehouseID,
		FromWarehouseName: d.FromWarehouseName,
		FromLocationID:    d.FromLocationID,
		FromLocationName:  d.FromLocationName,
		ToWarehouseID:     d.ToWarehouseID,
		ToWarehouseName:   d.ToWarehouseName,
		ToLocationID:      d.ToLocationID,
		ToLocationName:    d.ToLocationName,

		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	switch d.Type {
	case entity.DocReceipt:
		resp.SupplierName = d.PartnerName
	case entity.DocDelivery:
		resp.CustomerName = d.PartnerName
	case entity.DocAdjustment:
		resp.ProductID = d.ProductID
		resp.ProductName = d.ProductName
		resp.ProductSKU = d.ProductSKU
		resp.Reason = d.Reason
		system := d.SystemQuantity
		counted := d.CountedQuantity
		diff := d.Difference()
		resp.SystemQuantity = &system
		resp.CountedQuantity = &counted
		resp.Difference = &diff
	}
	if d.Type != entity.DocAdjustment {
		resp.Lines = make([]dto.DocumentLineResponse, 0, len(d.Lines))
		for _, l := range d.Lines {
			resp.Lines = append(resp.Lines, dto.DocumentLineResponse{
				ID:            l.ID,
				ProductID:     l.ProductID,
				ProductName:   l.ProductName,
				ProductSKU:    l.ProductSKU,
				Quantity:      l.Quantity,
				UnitOfMeasure: l.UnitOfMeasure,
				UnitPrice:     l.UnitPrice,
			})
		}
	}
	return resp
}
