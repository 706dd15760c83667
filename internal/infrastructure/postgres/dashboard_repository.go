package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas del tablero sobre PostgreSQL.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del tablero. Pasar pool o tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// Counts calcula los contadores en una sola pasada. "Bajo stock" es total > 0
// y total <= reorder_level (solo productos con umbral definido); "agotado" es
// total = 0, incluidos productos sin ninguna fila de saldo.
func (r *DashboardRepo) Counts() (*repository.DashboardCounts, error) {
	query := `
		WITH totals AS (
			SELECT p.id, p.reorder_level, COALESCE(SUM(s.quantity), 0) AS total
			FROM products p
			LEFT JOIN stock s ON s.product_id = p.id
			GROUP BY p.id, p.reorder_level
		)
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM totals WHERE reorder_level IS NOT NULL AND total > 0 AND total <= reorder_level),
			(SELECT COUNT(*) FROM totals WHERE total = 0),
			(SELECT COUNT(*) FROM documents WHERE type = 'receipt'  AND status IN ('draft', 'waiting')),
			(SELECT COUNT(*) FROM documents WHERE type = 'delivery' AND status IN ('draft', 'waiting')),
			(SELECT COUNT(*) FROM documents WHERE type = 'transfer' AND status IN ('waiting', 'ready'))`

	var c repository.DashboardCounts
	err := r.q.QueryRow(context.Background(), query).Scan(
		&c.TotalProducts, &c.LowStockItems, &c.OutOfStockItems,
		&c.PendingReceipts, &c.PendingDeliveries, &c.ScheduledTransfers,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &c, nil
}
