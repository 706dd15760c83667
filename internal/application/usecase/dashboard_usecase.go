package usecase

import (
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// DashboardUseCase expone los contadores agregados del tablero.
type DashboardUseCase struct {
	dashRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo}
}

// KPIs devuelve los indicadores del tablero: tamaño del catálogo, productos
// bajo umbral de reposición o agotados, y documentos pendientes por tipo.
func (uc *DashboardUseCase) KPIs() (*dto.DashboardKPIsResponse, error) {
	counts, err := uc.dashRepo.Counts()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardKPIsResponse{
		TotalProducts:      counts.TotalProducts,
		LowStockItems:      counts.LowStockItems,
		OutOfStockItems:    counts.OutOfStockItems,
		PendingReceipts:    counts.PendingReceipts,
		PendingDeliveries:  counts.PendingDeliveries,
		ScheduledTransfers: counts.ScheduledTransfers,
	}, nil
}
