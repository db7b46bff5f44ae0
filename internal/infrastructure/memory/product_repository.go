package memory

import (
	"context"
	"sort"

	"github.com/pasqualotto/controle-estoque/internal/domain"
	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
	"github.com/pasqualotto/controle-estoque/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria del catálogo.
type ProductRepo struct {
	g guard
}

// NewProductRepository construye el adaptador sobre el store.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{g: guard{s: s}}
}

// Create persiste un nuevo producto respetando la unicidad (código, filial).
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	release, err := r.g.write()
	if err != nil {
		return err
	}
	defer release()
	for _, p := range r.g.s.data.products {
		if p.BranchID == product.BranchID && p.Code == product.Code {
			return domain.ErrDuplicateCode
		}
	}
	r.g.s.data.products[product.ID] = *product
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	release, err := r.g.read()
	if err != nil {
		return nil, err
	}
	defer release()
	p, ok := r.g.s.data.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetForUpdate es GetByID: dentro de TxRunner el lock de escritura del store ya está tomado.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

// GetByBranchAndCode búsqueda exacta, sensible a mayúsculas.
func (r *ProductRepo) GetByBranchAndCode(_ context.Context, branchID int, code string) (*entity.Product, error) {
	release, err := r.g.read()
	if err != nil {
		return nil, err
	}
	defer release()
	for _, p := range r.g.s.data.products {
		if p.BranchID == branchID && p.Code == code {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

// List lista productos (opcionalmente de una filial) del más reciente al más antiguo.
func (r *ProductRepo) List(_ context.Context, branchID *int) ([]*entity.Product, error) {
	release, err := r.g.read()
	if err != nil {
		return nil, err
	}
	defer release()
	list := make([]*entity.Product, 0, len(r.g.s.data.products))
	for _, p := range r.g.s.data.products {
		if branchID != nil && p.BranchID != *branchID {
			continue
		}
		p := p
		list = append(list, &p)
	}
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].RegisteredAt.Equal(list[j].RegisteredAt) {
			return list[i].RegisteredAt.After(list[j].RegisteredAt)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

// DeleteWithMovements elimina productos y sus movimientos bajo un único lock de escritura.
func (r *ProductRepo) DeleteWithMovements(_ context.Context, ids []string) (int64, error) {
	release, err := r.g.write()
	if err != nil {
		return 0, err
	}
	defer release()
	targets := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := r.g.s.data.products[id]; ok {
			targets[id] = struct{}{}
		}
	}
	for id, m := range r.g.s.data.movements {
		if _, ok := targets[m.ProductID]; ok {
			delete(r.g.s.data.movements, id)
		}
	}
	for id := range targets {
		delete(r.g.s.data.products, id)
	}
	return int64(len(targets)), nil
}
