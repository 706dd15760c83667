package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
// IsActive=false equivale a archivada: deja de aceptar documentos nuevos
// pero su historial de movimientos permanece intacto.
type Warehouse struct {
	ID                string
	Name              string
	Code              string // código único legible (ej. "BOG-01")
	Address           string
	ContactInfo       string
	PrimaryLocationID string // ubicación por defecto para recepciones/entregas
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Location es una ubicación física dentro de una bodega (estantería, muelle, zona).
// Pertenece a exactamente una bodega.
type Location struct {
	ID          string
	WarehouseID string
	Name        string
	CreatedAt   time.Time
}
