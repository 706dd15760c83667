package repository

import (
	"time"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// DocumentFilter filtros del listado de documentos (dentro de un tipo).
type DocumentFilter struct {
	Type        entity.DocumentType
	Status      entity.DocumentStatus
	WarehouseID string
	Limit       int
	Offset      int
}

// DocumentRepository define el puerto de persistencia para documentos y sus
// líneas. Las líneas pertenecen en exclusiva a su documento: Update las
// reemplaza completas.
type DocumentRepository interface {
	Create(doc *entity.Document) error
	GetByID(id string) (*entity.Document, error)
	// GetForUpdate bloquea la fila del documento (SELECT FOR UPDATE); solo
	// tiene sentido dentro de una transacción. Evita dos confirmaciones
	// concurrentes del mismo documento.
	GetForUpdate(id string) (*entity.Document, error)
	// Update reescribe cabecera y líneas solo si el estado almacenado sigue
	// siendo doc.Status (el leído). Si otra transición lo movió entre la
	// lectura y la escritura devuelve ErrInvalidTransition sin tocar nada.
	Update(doc *entity.Document) error
	// UpdateStatus es un compare-and-swap: cambia el estado solo si el
	// almacenado sigue siendo from; si no, devuelve ErrInvalidTransition.
	// Así una transición con lectura vieja nunca pisa un done/canceled.
	UpdateStatus(id string, from, to entity.DocumentStatus, updatedAt time.Time) error
	List(filter DocumentFilter) ([]*entity.Document, error)
	Delete(id string) error
}

// SequenceRepository entrega números consecutivos por (prefijo, año) para los
// números de referencia <PREFIX>-<AÑO>-<seq>.
type SequenceRepository interface {
	Next(prefix string, year int) (int, error)
}
