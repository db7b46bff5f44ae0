package memory

import (
	"context"

	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
	"github.com/pasqualotto/controle-estoque/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo expone la semilla fija de filiales.
type BranchRepo struct {
	g guard
}

// NewBranchRepository construye el adaptador sobre el store.
func NewBranchRepository(s *Store) *BranchRepo {
	return &BranchRepo{g: guard{s: s}}
}

// List devuelve las filiales ordenadas por ID.
func (r *BranchRepo) List(_ context.Context) ([]*entity.Branch, error) {
	release, err := r.g.read()
	if err != nil {
		return nil, err
	}
	defer release()
	list := make([]*entity.Branch, 0, len(r.g.s.branches))
	for _, b := range r.g.s.branches {
		b := b
		list = append(list, &b)
	}
	return list, nil
}

// GetByID obtiene una filial por ID.
func (r *BranchRepo) GetByID(_ context.Context, id int) (*entity.Branch, error) {
	release, err := r.g.read()
	if err != nil {
		return nil, err
	}
	defer release()
	for _, b := range r.g.s.branches {
		if b.ID == id {
			b := b
			return &b, nil
		}
	}
	return nil, nil
}
