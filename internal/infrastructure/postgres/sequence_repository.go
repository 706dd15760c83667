package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo entrega consecutivos por (prefijo, año) desde la tabla
// document_sequences. El upsert con RETURNING hace el incremento atómico:
// dos creaciones concurrentes nunca reciben el mismo número.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador de secuencias. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next devuelve el siguiente consecutivo para el prefijo y año.
func (r *SequenceRepo) Next(prefix string, year int) (int, error) {
	query := `
		INSERT INTO document_sequences (prefix, year, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (prefix, year)
		DO UPDATE SET last_value = document_sequences.last_value + 1
		RETURNING last_value`
	var n int
	if err := r.q.QueryRow(context.Background(), query, prefix, year).Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence %s-%d: %w", prefix, year, err)
	}
	return n, nil
}
