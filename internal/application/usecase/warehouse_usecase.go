package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// WarehouseUseCase implementa la lógica de negocio de bodegas y ubicaciones.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
	locationRepo  repository.LocationRepository
	stockRepo     repository.StockRepository
	movRepo       repository.StockMovementRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
) *WarehouseUseCase {
	return &WarehouseUseCase{
		warehouseRepo: warehouseRepo,
		locationRepo:  locationRepo,
		stockRepo:     stockRepo,
		movRepo:       movRepo,
	}
}

// Create registra una bodega con sus ubicaciones iniciales. La primera
// ubicación de la lista queda como primaria (destino por defecto de
// recepciones y entregas). El código es único: duplicado → ErrDuplicate.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" || in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.warehouseRepo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	wh := &entity.Warehouse{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Code:        in.Code,
		Address:     in.Address,
		ContactInfo: in.ContactInfo,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.warehouseRepo.Create(wh); err != nil {
		return nil, err
	}

	for i, l := range in.Locations {
		if l.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		loc := &entity.Location{
			ID:          uuid.New().String(),
			WarehouseID: wh.ID,
			Name:        l.Name,
			CreatedAt:   now,
		}
		if err := uc.locationRepo.Create(loc); err != nil {
			return nil, err
		}
		if i == 0 {
			wh.PrimaryLocationID = loc.ID
		}
	}
	if wh.PrimaryLocationID != "" {
		if err := uc.warehouseRepo.Update(wh); err != nil {
			return nil, err
		}
	}
	return uc.withLocations(wh)
}

// GetByID obtiene una bodega con sus ubicaciones.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	wh, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	return uc.withLocations(wh)
}

// List lista bodegas; isActive=nil incluye las archivadas.
func (uc *WarehouseUseCase) List(isActive *bool) (*dto.WarehouseListResponse, error) {
	whs, err := uc.warehouseRepo.List(isActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(whs))
	for _, wh := range whs {
		resp, err := uc.withLocations(wh)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.WarehouseListResponse{Items: items}, nil
}

// Update modifica los campos editables. El código es inmutable después de
// crear. IsActive=false archiva la bodega.
func (uc *WarehouseUseCase) Update(id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	wh, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		wh.Name = *in.Name
	}
	if in.Address != nil {
		wh.Address = *in.Address
	}
	if in.ContactInfo != nil {
		wh.ContactInfo = *in.ContactInfo
	}
	if in.IsActive != nil {
		wh.IsActive = *in.IsActive
	}
	wh.UpdatedAt = time.Now()

	if err := uc.warehouseRepo.Update(wh); err != nil {
		return nil, err
	}
	return uc.withLocations(wh)
}

// Archive marca la bodega como inactiva. Es la vía de retiro cuando existen
// saldos o historial: la bodega deja de aceptar documentos nuevos pero su
// trazabilidad queda intacta.
func (uc *WarehouseUseCase) Archive(id string) (*dto.WarehouseResponse, error) {
	inactive := false
	return uc.Update(id, dto.UpdateWarehouseRequest{IsActive: &inactive})
}

// Delete elimina una bodega definitivamente. Solo se admite sin saldos y sin
// apariciones en el libro; en cualquier otro caso la respuesta es ErrConflict
// y el camino correcto es archivarla.
func (uc *WarehouseUseCase) Delete(id string) error {
	wh, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if wh == nil {
		return domain.ErrNotFound
	}

	hasStock, err := uc.stockRepo.HasStockInWarehouse(id)
	if err != nil {
		return err
	}
	if hasStock {
		return domain.ErrConflict
	}
	inLedger, err := uc.movRepo.ExistsForWarehouse(id)
	if err != nil {
		return err
	}
	if inLedger {
		return domain.ErrConflict
	}
	return uc.warehouseRepo.Delete(id)
}

// AddLocation agrega una ubicación a la bodega. Si la bodega aún no tiene
// ubicación primaria, la nueva lo será.
func (uc *WarehouseUseCase) AddLocation(warehouseID string, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	wh, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}

	loc := &entity.Location{
		ID:          uuid.New().String(),
		WarehouseID: wh.ID,
		Name:        in.Name,
		CreatedAt:   time.Now(),
	}
	if err := uc.locationRepo.Create(loc); err != nil {
		return nil, err
	}
	if wh.PrimaryLocationID == "" {
		wh.PrimaryLocationID = loc.ID
		wh.UpdatedAt = time.Now()
		if err := uc.warehouseRepo.Update(wh); err != nil {
			return nil, err
		}
	}
	return &dto.LocationResponse{
		ID:          loc.ID,
		WarehouseID: loc.WarehouseID,
		Name:        loc.Name,
		IsPrimary:   wh.PrimaryLocationID == loc.ID,
	}, nil
}

// ListLocations lista las ubicaciones de la bodega.
func (uc *WarehouseUseCase) ListLocations(warehouseID string) ([]dto.LocationResponse, error) {
	wh, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	locs, err := uc.locationRepo.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(locs))
	for _, l := range locs {
		out = append(out, dto.LocationResponse{
			ID:          l.ID,
			WarehouseID: l.WarehouseID,
			Name:        l.Name,
			IsPrimary:   l.ID == wh.PrimaryLocationID,
		})
	}
	return out, nil
}

// RenameLocation cambia el nombre de una ubicación de la bodega.
func (uc *WarehouseUseCase) RenameLocation(warehouseID, locationID, name string) (*dto.LocationResponse, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	wh, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	loc, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil || loc.WarehouseID != warehouseID {
		return nil, domain.ErrNotFound
	}

	loc.Name = name
	if err := uc.locationRepo.Update(loc); err != nil {
		return nil, err
	}
	return &dto.LocationResponse{
		ID:          loc.ID,
		WarehouseID: loc.WarehouseID,
		Name:        loc.Name,
		IsPrimary:   loc.ID == wh.PrimaryLocationID,
	}, nil
}

func (uc *WarehouseUseCase) withLocations(wh *entity.Warehouse) (*dto.WarehouseResponse, error) {
	locs, err := uc.locationRepo.ListByWarehouse(wh.ID)
	if err != nil {
		return nil, err
	}
	locations := make([]dto.LocationResponse, 0, len(locs))
	for _, l := range locs {
		locations = append(locations, dto.LocationResponse{
			ID:          l.ID,
			WarehouseID: l.WarehouseID,
			Name:        l.Name,
			IsPrimary:   l.ID == wh.PrimaryLocationID,
		})
	}
	return &dto.WarehouseResponse{
		ID:          wh.ID,
		Name:        wh.Name,
		Code:        wh.Code,
		Address:     wh.Address,
		ContactInfo: wh.ContactInfo,
		IsActive:    wh.IsActive,
		Locations:   locations,
		CreatedAt:   wh.CreatedAt,
		UpdatedAt:   wh.UpdatedAt,
	}, nil
}
