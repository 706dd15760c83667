package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de ubicaciones. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una ubicación nueva.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (id, warehouse_id, name, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.WarehouseID, location.Name, location.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID (nil si no existe).
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	query := `SELECT id, warehouse_id, name, created_at FROM locations WHERE id = $1`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.WarehouseID, &l.Name, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// ListByWarehouse lista las ubicaciones de una bodega por orden de creación.
func (r *LocationRepo) ListByWarehouse(warehouseID string) ([]*entity.Location, error) {
	query := `SELECT id, warehouse_id, name, created_at FROM locations WHERE warehouse_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.WarehouseID, &l.Name, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update cambia el nombre de la ubicación.
func (r *LocationRepo) Update(location *entity.Location) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE locations SET name = $2 WHERE id = $1`,
		location.ID, location.Name,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}
