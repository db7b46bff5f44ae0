package inventory

import (
	"context"

	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
	"github.com/pasqualotto/controle-estoque/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Si fn devuelve error no queda ninguna escritura aplicada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// StockReportGenerator genera la representación imprimible de la vista de stock.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, report StockReport) ([]byte, error)
}

// StockReport datos de entrada del reporte de stock.
type StockReport struct {
	Title    string
	Branches map[int]string
	Lines    []entity.StockLine
}
