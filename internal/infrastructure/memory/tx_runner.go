package memory

import (
	"context"

	"github.com/pasqualotto/controle-estoque/internal/application/inventory"
	"github.com/pasqualotto/controle-estoque/internal/domain"
	"github.com/pasqualotto/controle-estoque/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner serializa fn con el lock de escritura del store y restaura el estado si fn falla.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run toma el lock, ejecuta fn con repos que no vuelven a bloquear y hace rollback ante error.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.closed {
		return domain.ErrStorageUnavailable
	}

	backup := r.s.data.clone()
	g := guard{s: r.s, held: true}
	if err := fn(&ProductRepo{g: g}, &MovementRepo{g: g}, &StockRepo{g: g}); err != nil {
		r.s.data = backup
		return err
	}
	return nil
}
