package dto

import "time"

// CreateLocationRequest ubicación dentro de la bodega.
type CreateLocationRequest struct {
	Name string `json:"name"`
}

// CreateWarehouseRequest body para POST /api/warehouses. La primera ubicación
// de la lista queda como ubicación primaria de la bodega.
type CreateWarehouseRequest struct {
	Name        string                  `json:"name"`
	Code        string                  `json:"code"`
	Address     string                  `json:"address,omitempty"`
	ContactInfo string                  `json:"contact_info,omitempty"`
	Locations   []CreateLocationRequest `json:"locations,omitempty"`
}

// UpdateWarehouseRequest body para PUT /api/warehouses/:id (campos opcionales).
type UpdateWarehouseRequest struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	ContactInfo *string `json:"contact_info,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// LocationResponse ubicación de bodega.
type LocationResponse struct {
	ID          string `json:"id"`
	WarehouseID string `json:"warehouse_id"`
	Name        string `json:"name"`
	IsPrimary   bool   `json:"is_primary"`
}

// WarehouseResponse bodega con sus ubicaciones.
type WarehouseResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Code        string             `json:"code"`
	Address     string             `json:"address,omitempty"`
	ContactInfo string             `json:"contact_info,omitempty"`
	IsActive    bool               `json:"is_active"`
	Locations   []LocationResponse `json:"locations"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// WarehouseListResponse listado de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
}
