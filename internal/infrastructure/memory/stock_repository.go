package memory

import (
	"context"
	"sort"

	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
	"github.com/pasqualotto/controle-estoque/internal/domain/inventory"
	"github.com/pasqualotto/controle-estoque/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo deriva el stock recorriendo el libro en cada consulta.
type StockRepo struct {
	g guard
}

// NewStockRepository construye el adaptador sobre el store.
func NewStockRepository(s *Store) *StockRepo {
	return &StockRepo{g: guard{s: s}}
}

// CurrentQuantity suma los movimientos del producto.
func (r *StockRepo) CurrentQuantity(_ context.Context, productID string) (int64, error) {
	release, err := r.g.read()
	if err != nil {
		return 0, err
	}
	defer release()
	movs := make([]entity.Movement, 0)
	for _, m := range r.g.s.data.movements {
		if m.ProductID == productID {
			movs = append(movs, m)
		}
	}
	return inventory.CurrentQuantity(movs), nil
}

// Lines arma una StockLine por producto con la cantidad derivada, ordenadas por nombre.
func (r *StockRepo) Lines(_ context.Context, branchID *int) ([]entity.StockLine, error) {
	release, err := r.g.read()
	if err != nil {
		return nil, err
	}
	defer release()
	movs := make([]entity.Movement, 0, len(r.g.s.data.movements))
	for _, m := range r.g.s.data.movements {
		movs = append(movs, m)
	}
	qty := inventory.QuantitiesByProduct(movs)

	lines := make([]entity.StockLine, 0, len(r.g.s.data.products))
	for _, p := range r.g.s.data.products {
		if branchID != nil && p.BranchID != *branchID {
			continue
		}
		lines = append(lines, entity.StockLine{
			ProductID:       p.ID,
			Code:            p.Code,
			Name:            p.Name,
			UnitPrice:       p.UnitPrice,
			CurrentQuantity: qty[p.ID],
			BranchID:        p.BranchID,
		})
	}
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Name != lines[j].Name {
			return lines[i].Name < lines[j].Name
		}
		return lines[i].ProductID < lines[j].ProductID
	})
	return lines, nil
}
