package documents

import (
	"context"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la confirmación de un documento
// (chequeos de saldo + upserts + movimientos + cambio de estado) sea atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		docRepo repository.DocumentRepository,
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}

// DeliveryNotePDFGenerator genera la remisión de entrega en PDF.
type DeliveryNotePDFGenerator interface {
	GenerateDeliveryNote(ctx context.Context, doc *entity.Document) ([]byte, error)
}
