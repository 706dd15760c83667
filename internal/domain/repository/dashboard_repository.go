package repository

// DashboardCounts agrupa los contadores del tablero.
type DashboardCounts struct {
	TotalProducts      int
	LowStockItems      int // 0 < total ≤ reorder_level
	OutOfStockItems    int
	PendingReceipts    int // draft o waiting
	PendingDeliveries  int // draft o waiting
	ScheduledTransfers int // waiting o ready
}

// DashboardRepository define el puerto de consultas agregadas del tablero.
type DashboardRepository interface {
	Counts() (*DashboardCounts, error)
}
