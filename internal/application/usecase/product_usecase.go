package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// ProductUseCase implementa la lógica de negocio del catálogo de productos.
// El stock no se edita aquí: se deriva de la tabla de saldos y se adjunta a
// las respuestas.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
	movRepo     repository.StockMovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, stockRepo: stockRepo, movRepo: movRepo}
}

// Create registra un producto nuevo. El SKU es único: se verifica con
// GetBySKU antes de insertar y el índice único de la tabla respalda la
// carrera (23505 → domain.ErrDuplicate).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.UnitOfMeasure == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ReorderLevel != nil && in.ReorderLevel.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		Name:          in.Name,
		Category:      in.Category,
		Description:   in.Description,
		UnitOfMeasure: in.UnitOfMeasure,
		ReorderLevel:  in.ReorderLevel,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return uc.withStock(product)
}

// GetByID obtiene un producto con su stock total y desglose por ubicación.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.withStock(product)
}

// List lista productos con filtros de búsqueda (nombre/SKU, sin distinguir
// tildes ni mayúsculas), categoría y bodega.
func (uc *ProductUseCase) List(filter repository.ProductFilter, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	filter.Limit = page.Limit
	filter.Offset = page.Offset

	products, err := uc.productRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp, err := uc.withStock(p)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update modifica los campos editables. El SKU es inmutable después de crear.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.UnitOfMeasure != nil {
		if *in.UnitOfMeasure == "" {
			return nil, domain.ErrInvalidInput
		}
		product.UnitOfMeasure = *in.UnitOfMeasure
	}
	if in.ReorderLevel != nil {
		if in.ReorderLevel.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.ReorderLevel = in.ReorderLevel
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return uc.withStock(product)
}

// Delete elimina un producto del catálogo. Se rechaza con ErrConflict si el
// producto tiene saldo distinto de cero o aparece en el libro de movimientos:
// borrarlo rompería la trazabilidad del inventario.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	hasStock, err := uc.stockRepo.HasStockForProduct(id)
	if err != nil {
		return err
	}
	if hasStock {
		return domain.ErrConflict
	}
	inLedger, err := uc.movRepo.ExistsForProduct(id)
	if err != nil {
		return err
	}
	if inLedger {
		return domain.ErrConflict
	}
	return uc.productRepo.Delete(id)
}

// Categories devuelve las categorías distintas en uso, ordenadas.
func (uc *ProductUseCase) Categories() ([]string, error) {
	return uc.productRepo.Categories()
}

// withStock adjunta al producto su total y el desglose por ubicación.
func (uc *ProductUseCase) withStock(p *entity.Product) (*dto.ProductResponse, error) {
	total, err := uc.stockRepo.TotalByProduct(p.ID)
	if err != nil {
		return nil, err
	}
	rows, err := uc.stockRepo.ListByProduct(p.ID)
	if err != nil {
		return nil, err
	}
	byLocation := make([]dto.StockByLocationResponse, 0, len(rows))
	for _, r := range rows {
		byLocation = append(byLocation, dto.StockByLocationResponse{
			WarehouseID:   r.WarehouseID,
			WarehouseName: r.WarehouseName,
			LocationID:    r.LocationID,
			LocationName:  r.LocationName,
			Quantity:      r.Quantity,
		})
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		SKU:             p.SKU,
		Name:            p.Name,
		Category:        p.Category,
		Description:     p.Description,
		UnitOfMeasure:   p.UnitOfMeasure,
		ReorderLevel:    p.ReorderLevel,
		TotalStock:      total,
		StockByLocation: byLocation,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}, nil
}
