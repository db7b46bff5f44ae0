package postgres

import (
	"context"
	"fmt"

	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
	"github.com/pasqualotto/controle-estoque/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// quantityExpr suma el libro del producto p: Entrada positiva, Saída negativa.
const quantityExpr = `COALESCE(
	(SELECT SUM(CASE WHEN tipo = 'Entrada' THEN quantidade ELSE -quantidade END)
	 FROM movimentacoes WHERE produto_id = p.id), 0)`

// StockRepo deriva el stock con agregaciones SQL; no existe tabla de saldos.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// CurrentQuantity obtiene el stock actual de un producto sumando sus movimientos.
func (r *StockRepo) CurrentQuantity(ctx context.Context, productID string) (int64, error) {
	if !isUUID(productID) {
		return 0, nil
	}
	var qty int64
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(CASE WHEN tipo = 'Entrada' THEN quantidade ELSE -quantidade END), 0)
		FROM movimentacoes WHERE produto_id = $1`, productID,
	).Scan(&qty)
	if err != nil {
		return 0, fmt.Errorf("current stock: %w", err)
	}
	return qty, nil
}

// Lines devuelve la vista de stock (una línea por producto) ordenada por nombre.
func (r *StockRepo) Lines(ctx context.Context, branchID *int) ([]entity.StockLine, error) {
	query := `
		SELECT p.id, p.codigo, p.nome, p.valor, p.filial_id, ` + quantityExpr + ` AS quantidade_atual
		FROM produtos p`
	var args []any
	if branchID != nil {
		query += ` WHERE p.filial_id = $1`
		args = append(args, *branchID)
	}
	query += ` ORDER BY p.nome, p.id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stock lines: %w", err)
	}
	defer rows.Close()
	lines := make([]entity.StockLine, 0)
	for rows.Next() {
		var l entity.StockLine
		if err := rows.Scan(&l.ProductID, &l.Code, &l.Name, &l.UnitPrice, &l.BranchID, &l.CurrentQuantity); err != nil {
			return nil, fmt.Errorf("scan stock line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
