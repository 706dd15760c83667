package stock

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	domainstock "github.com/jhoicas/stockmaster-api/internal/domain/stock"
)

// StockUseCase expone las consultas de saldos y del libro de movimientos.
// Todas son de solo lectura: los saldos solo cambian confirmando documentos.
type StockUseCase struct {
	stockRepo   repository.StockRepository
	movRepo     repository.StockMovementRepository
	productRepo repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, movRepo: movRepo, productRepo: productRepo}
}

// Balance devuelve el saldo de un producto. Con bodega y ubicación devuelve la
// tripleta exacta; con solo bodega agrega sus ubicaciones; sin ninguna agrega
// todo. La ausencia de filas se lee como cero, nunca como error.
func (uc *StockUseCase) Balance(productID, warehouseID, locationID string) (*dto.BalanceResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if locationID != "" && warehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	resp := &dto.BalanceResponse{ProductID: productID, WarehouseID: warehouseID, LocationID: locationID}

	switch {
	case locationID != "":
		row, err := uc.stockRepo.Get(productID, warehouseID, locationID)
		if err != nil {
			return nil, err
		}
		resp.Quantity = row.Quantity

	case warehouseID != "":
		rows, err := uc.stockRepo.ListByProduct(productID)
		if err != nil {
			return nil, err
		}
		total := decimal.Zero
		for _, r := range rows {
			if r.WarehouseID == warehouseID {
				total = total.Add(r.Quantity)
			}
		}
		resp.Quantity = total

	default:
		total, err := uc.stockRepo.TotalByProduct(productID)
		if err != nil {
			return nil, err
		}
		resp.Quantity = total
	}
	return resp, nil
}

// ByProduct devuelve las filas de saldo del producto con nombres de bodega y
// ubicación (el desglose que acompaña al detalle de producto).
func (uc *StockUseCase) ByProduct(productID string) ([]*entity.StockByLocation, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.stockRepo.ListByProduct(productID)
}

// ByWarehouse devuelve todas las filas de saldo de una bodega.
func (uc *StockUseCase) ByWarehouse(warehouseID string) ([]*entity.StockByLocation, error) {
	return uc.stockRepo.ListByWarehouse(warehouseID)
}

// Movements lista el libro con filtros, por timestamp descendente.
func (uc *StockUseCase) Movements(filter repository.MovementFilter, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	filter.Limit = page.Limit
	filter.Offset = page.Offset

	movs, err := uc.movRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ReplayLedger reconstruye los saldos desde cero reproduciendo el libro
// completo. Es la verificación operativa de que la tabla de saldos mantenida
// incrementalmente coincide con el libro: devuelve las tripletas proyectadas
// con su cantidad.
func (uc *StockUseCase) ReplayLedger() ([]dto.BalanceResponse, error) {
	movs, err := uc.movRepo.ListAll()
	if err != nil {
		return nil, err
	}
	ledger := make([]entity.StockMovement, 0, len(movs))
	for _, m := range movs {
		ledger = append(ledger, *m)
	}
	balances := domainstock.Replay(ledger)
	out := make([]dto.BalanceResponse, 0, len(balances))
	for k, q := range balances {
		out = append(out, dto.BalanceResponse{
			ProductID:   k.ProductID,
			WarehouseID: k.WarehouseID,
			LocationID:  k.LocationID,
			Quantity:    q,
		})
	}
	return out, nil
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:                    m.ID,
		Timestamp:             m.Timestamp,
		ProductID:             m.ProductID,
		ProductName:           m.ProductName,
		ProductSKU:            m.ProductSKU,
		MovementType:          string(m.MovementType),
		WarehouseID:           m.WarehouseID,
		WarehouseName:         m.WarehouseName,
		FromLocationID:        m.FromLocationID,
		FromLocationName:      m.FromLocationName,
		ToWarehouseID:         m.ToWarehouseID,
		ToWarehouseName:       m.ToWarehouseName,
		ToLocationID:          m.ToLocationID,
		ToLocationName:        m.ToLocationName,
		QuantityChange:        m.QuantityChange,
		ReferenceDocumentID:   m.ReferenceDocumentID,
		ReferenceDocumentType: string(m.ReferenceDocumentType),
		Notes:                 m.Notes,
	}
}
