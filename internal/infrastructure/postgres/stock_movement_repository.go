package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL.
// La tabla es append-only: este adaptador no expone update ni delete. La
// columna seq (bigserial) da el orden de inserción para desempates y replay.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `
	id, ts, product_id, product_name, product_sku, movement_type,
	warehouse_id, warehouse_name,
	COALESCE(from_location_id, ''), COALESCE(from_location_name, ''),
	COALESCE(to_warehouse_id, ''), COALESCE(to_warehouse_name, ''),
	COALESCE(to_location_id, ''), COALESCE(to_location_name, ''),
	quantity_change, reference_document_id, reference_document_type,
	notes, COALESCE(created_by, '')`

// Create persiste una entrada del libro. Una entrada sin ningún endpoint o
// con cantidad cero no describe movimiento alguno: se rechaza antes de tocar
// la base (los CHECK de la tabla respaldan lo mismo).
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.FromLocationID == "" && movement.ToLocationID == "" {
		return domain.ErrInvalidInput
	}
	if movement.QuantityChange.IsZero() {
		return domain.ErrInvalidInput
	}
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (
			id, ts, product_id, product_name, product_sku, movement_type,
			warehouse_id, warehouse_name,
			from_location_id, from_location_name,
			to_warehouse_id, to_warehouse_name, to_location_id, to_location_name,
			quantity_change, reference_document_id, reference_document_type,
			notes, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			NULLIF($9, ''), NULLIF($10, ''),
			NULLIF($11, ''), NULLIF($12, ''), NULLIF($13, ''), NULLIF($14, ''),
			$15, $16, $17, $18, NULLIF($19, '')
		)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Timestamp, movement.ProductID, movement.ProductName, movement.ProductSKU,
		movement.MovementType, movement.WarehouseID, movement.WarehouseName,
		movement.FromLocationID, movement.FromLocationName,
		movement.ToWarehouseID, movement.ToWarehouseName, movement.ToLocationID, movement.ToLocationName,
		movement.QuantityChange, movement.ReferenceDocumentID, movement.ReferenceDocumentType,
		movement.Notes, movement.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// List lista el libro con filtros, por timestamp descendente (seq descendente
// como desempate).
func (r *StockMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE 1=1`
	var args []any
	pos := 1
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND (warehouse_id = $%d OR to_warehouse_id = $%d)", pos, pos)
		args = append(args, filter.WarehouseID)
		pos++
	}
	if filter.MovementType != "" {
		query += fmt.Sprintf(" AND movement_type = $%d", pos)
		args = append(args, filter.MovementType)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND ts >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND ts <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY ts DESC, seq DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListAll devuelve el libro completo en orden de inserción, para reconstruir
// los saldos desde cero.
func (r *StockMovementRepo) ListAll() ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ExistsForProduct indica si el producto aparece en el libro.
func (r *StockMovementRepo) ExistsForProduct(productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM stock_movements WHERE product_id = $1)`,
		productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("movement exists for product: %w", err)
	}
	return exists, nil
}

// ExistsForWarehouse indica si la bodega aparece en el libro (como contexto o
// como destino de transfer).
func (r *StockMovementRepo) ExistsForWarehouse(warehouseID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM stock_movements WHERE warehouse_id = $1 OR to_warehouse_id = $1)`,
		warehouseID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("movement exists for warehouse: %w", err)
	}
	return exists, nil
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.Timestamp, &m.ProductID, &m.ProductName, &m.ProductSKU, &m.MovementType,
			&m.WarehouseID, &m.WarehouseName,
			&m.FromLocationID, &m.FromLocationName,
			&m.ToWarehouseID, &m.ToWarehouseName, &m.ToLocationID, &m.ToLocationName,
			&m.QuantityChange, &m.ReferenceDocumentID, &m.ReferenceDocumentType,
			&m.Notes, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
