package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación del puerto DocumentRepository sobre PostgreSQL
// (usable con pool o tx). Las cuatro variantes comparten tabla; los campos
// ajenos a la variante quedan NULL. Las líneas viven en document_lines y se
// reemplazan completas en cada Update.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador de documentos. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `
	id, reference_no, type, status, date,
	COALESCE(partner_name, ''),
	COALESCE(warehouse_id, ''), COALESCE(warehouse_name, ''),
	COALESCE(location_id, ''), COALESCE(location_name, ''),
	COALESCE(from_warehouse_id, ''), COALESCE(from_warehouse_name, ''),
	COALESCE(from_location_id, ''), COALESCE(from_location_name, ''),
	COALESCE(to_warehouse_id, ''), COALESCE(to_warehouse_name, ''),
	COALESCE(to_location_id, ''), COALESCE(to_location_name, ''),
	COALESCE(product_id, ''), COALESCE(product_name, ''), COALESCE(product_sku, ''),
	COALESCE(reason, ''),
	COALESCE(system_quantity, 0), COALESCE(counted_quantity, 0),
	notes, created_at, updated_at`

// Create persiste el documento con sus líneas. Referencia duplicada -> ErrDuplicate.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	query := `
		INSERT INTO documents (
			id, reference_no, type, status, date, partner_name,
			warehouse_id, warehouse_name, location_id, location_name,
			from_warehouse_id, from_warehouse_name, from_location_id, from_location_name,
			to_warehouse_id, to_warehouse_name, to_location_id, to_location_name,
			product_id, product_name, product_sku, reason, system_quantity, counted_quantity,
			notes, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, NULLIF($6, ''),
			NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''),
			NULLIF($11, ''), NULLIF($12, ''), NULLIF($13, ''), NULLIF($14, ''),
			NULLIF($15, ''), NULLIF($16, ''), NULLIF($17, ''), NULLIF($18, ''),
			NULLIF($19, ''), NULLIF($20, ''), NULLIF($21, ''), NULLIF($22, ''),
			$23, $24, $25, $26, $27
		)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.ReferenceNo, doc.Type, doc.Status, doc.Date, doc.PartnerName,
		doc.WarehouseID, doc.WarehouseName, doc.LocationID, doc.LocationName,
		doc.FromWarehouseID, doc.FromWarehouseName, doc.FromLocationID, doc.FromLocationName,
		doc.ToWarehouseID, doc.ToWarehouseName, doc.ToLocationID, doc.ToLocationName,
		doc.ProductID, doc.ProductName, doc.ProductSKU, doc.Reason,
		doc.SystemQuantity, doc.CountedQuantity,
		doc.Notes, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return r.insertLines(doc.ID, doc.Lines)
}

// GetByID obtiene un documento con sus líneas (nil si no existe).
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	return r.get(id, false)
}

// GetForUpdate igual que GetByID pero bloquea la fila del documento
// (SELECT FOR UPDATE). Solo tiene sentido dentro de una transacción.
func (r *DocumentRepo) GetForUpdate(id string) (*entity.Document, error) {
	return r.get(id, true)
}

// Update reescribe la cabecera y reemplaza las líneas completas. El WHERE
// exige que el estado almacenado siga siendo doc.Status: si otra transición
// lo movió después de la lectura, cero filas → ErrInvalidTransition y las
// líneas quedan intactas.
func (r *DocumentRepo) Update(doc *entity.Document) error {
	query := `
		UPDATE documents SET
			date = $3, partner_name = NULLIF($4, ''),
			location_id = NULLIF($5, ''), location_name = NULLIF($6, ''),
			from_location_id = NULLIF($7, ''), from_location_name = NULLIF($8, ''),
			to_location_id = NULLIF($9, ''), to_location_name = NULLIF($10, ''),
			reason = NULLIF($11, ''), system_quantity = $12, counted_quantity = $13,
			notes = $14, updated_at = $15
		WHERE id = $1 AND status = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.Status, doc.Date, doc.PartnerName,
		doc.LocationID, doc.LocationName,
		doc.FromLocationID, doc.FromLocationName,
		doc.ToLocationID, doc.ToLocationName,
		doc.Reason, doc.SystemQuantity, doc.CountedQuantity,
		doc.Notes, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInvalidTransition
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM document_lines WHERE document_id = $1`, doc.ID); err != nil {
		return fmt.Errorf("replace document lines: %w", err)
	}
	return r.insertLines(doc.ID, doc.Lines)
}

// UpdateStatus cambia el estado con compare-and-swap sobre from: cero filas
// significa que el estado almacenado ya no es el leído (otra transición ganó
// la carrera) y se devuelve ErrInvalidTransition.
func (r *DocumentRepo) UpdateStatus(id string, from, to entity.DocumentStatus, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE documents SET status = $2, updated_at = $3 WHERE id = $1 AND status = $4`,
		id, to, updatedAt, from,
	)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}

// List lista documentos de un tipo por fecha descendente, con filtros de
// estado y bodega (la bodega de transfer matchea origen o destino).
func (r *DocumentRepo) List(filter repository.DocumentFilter) ([]*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE type = $1`
	args := []any{filter.Type}
	pos := 2
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND (warehouse_id = $%d OR from_warehouse_id = $%d OR to_warehouse_id = $%d)", pos, pos, pos)
		args = append(args, filter.WarehouseID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var list []*entity.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, doc := range list {
		lines, err := r.lines(doc.ID)
		if err != nil {
			return nil, err
		}
		doc.Lines = lines
	}
	return list, nil
}

// Delete elimina el documento; las líneas caen en cascada.
func (r *DocumentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

func (r *DocumentRepo) get(id string, forUpdate bool) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	doc, err := scanDocument(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	lines, err := r.lines(id)
	if err != nil {
		return nil, err
	}
	doc.Lines = lines
	return doc, nil
}

func (r *DocumentRepo) insertLines(docID string, lines []entity.DocumentLine) error {
	for i, l := range lines {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO document_lines (id, document_id, line_no, product_id, product_name, product_sku, quantity, unit_of_measure, unit_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			l.ID, docID, i+1, l.ProductID, l.ProductName, l.ProductSKU,
			l.Quantity, l.UnitOfMeasure, l.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert document line: %w", err)
		}
	}
	return nil
}

func (r *DocumentRepo) lines(docID string) ([]entity.DocumentLine, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, document_id, product_id, product_name, product_sku, quantity, unit_of_measure, unit_price
		FROM document_lines WHERE document_id = $1 ORDER BY line_no`,
		docID,
	)
	if err != nil {
		return nil, fmt.Errorf("list document lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.DocumentLine
	for rows.Next() {
		var l entity.DocumentLine
		if err := rows.Scan(&l.ID, &l.DocumentID, &l.ProductID, &l.ProductName, &l.ProductSKU,
			&l.Quantity, &l.UnitOfMeasure, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan document line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var d entity.Document
	err := row.Scan(
		&d.ID, &d.ReferenceNo, &d.Type, &d.Status, &d.Date,
		&d.PartnerName,
		&d.WarehouseID, &d.WarehouseName, &d.LocationID, &d.LocationName,
		&d.FromWarehouseID, &d.FromWarehouseName, &d.FromLocationID, &d.FromLocationName,
		&d.ToWarehouseID, &d.ToWarehouseName, &d.ToLocationID, &d.ToLocationName,
		&d.ProductID, &d.ProductName, &d.ProductSKU,
		&d.Reason, &d.SystemQuantity, &d.CountedQuantity,
		&d.Notes, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan document: %w", err)
	}
	return &d, nil
}
