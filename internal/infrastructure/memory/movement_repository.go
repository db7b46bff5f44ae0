package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/pasqualotto/controle-estoque/internal/domain"
	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
	"github.com/pasqualotto/controle-estoque/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación en memoria del libro de movimientos.
type MovementRepo struct {
	g guard
}

// NewMovementRepository construye el adaptador sobre el store.
func NewMovementRepository(s *Store) *MovementRepo {
	return &MovementRepo{g: guard{s: s}}
}

// Create agrega un movimiento. El producto referenciado debe existir (equivale a la FK).
func (r *MovementRepo) Create(_ context.Context, movement *entity.Movement) error {
	release, err := r.g.write()
	if err != nil {
		return err
	}
	defer release()
	if _, ok := r.g.s.data.products[movement.ProductID]; !ok {
		return fmt.Errorf("create movement: producto %s: %w", movement.ProductID, domain.ErrNotFound)
	}
	if _, ok := r.g.s.data.movements[movement.ID]; ok {
		return fmt.Errorf("create movement: id %s repetido", movement.ID)
	}
	r.g.s.data.movements[movement.ID] = *movement
	return nil
}

// List devuelve los movimientos filtrados, unidos con su producto, del más reciente al más antiguo.
func (r *MovementRepo) List(_ context.Context, filter repository.MovementFilter) ([]*entity.MovementDetail, error) {
	release, err := r.g.read()
	if err != nil {
		return nil, err
	}
	defer release()
	list := make([]*entity.MovementDetail, 0)
	for _, m := range r.g.s.data.movements {
		if filter.BranchID != nil && m.BranchID != *filter.BranchID {
			continue
		}
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.Kind != "" && m.Kind != filter.Kind {
			continue
		}
		p, ok := r.g.s.data.products[m.ProductID]
		if !ok {
			continue
		}
		list = append(list, &entity.MovementDetail{Movement: m, ProductCode: p.Code, ProductName: p.Name})
	}
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].OccurredAt.Equal(list[j].OccurredAt) {
			return list[i].OccurredAt.After(list[j].OccurredAt)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

// Delete elimina los movimientos indicados; ids inexistentes se ignoran.
func (r *MovementRepo) Delete(_ context.Context, ids []string) (int64, error) {
	release, err := r.g.write()
	if err != nil {
		return 0, err
	}
	defer release()
	var n int64
	for _, id := range ids {
		if _, ok := r.g.s.data.movements[id]; ok {
			delete(r.g.s.data.movements, id)
			n++
		}
	}
	return n, nil
}
