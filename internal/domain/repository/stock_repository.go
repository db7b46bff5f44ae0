package repository

import (
	"context"

	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
)

// StockRepository define el puerto de lectura del stock derivado.
// Ninguna implementación guarda cantidades: todo se suma desde movimientos en cada consulta.
type StockRepository interface {
	// CurrentQuantity devuelve 0 si el producto no tiene movimientos o no existe.
	CurrentQuantity(ctx context.Context, productID string) (int64, error)
	// Lines devuelve una línea por producto, ordenadas por nombre; branchID nil = todas las filiales.
	Lines(ctx context.Context, branchID *int) ([]entity.StockLine, error)
}
