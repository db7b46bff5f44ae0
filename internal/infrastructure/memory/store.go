// Package memory implementa los puertos de persistencia en memoria.
// Se usa cuando PostgreSQL no está configurado o no responde al arrancar (modo degradado),
// y en los tests. Los datos no sobreviven al proceso.
package memory

import (
	"sync"

	"github.com/pasqualotto/controle-estoque/internal/domain"
	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
)

type state struct {
	products  map[string]entity.Product
	movements map[string]entity.Movement
}

func newState() state {
	return state{
		products:  make(map[string]entity.Product),
		movements: make(map[string]entity.Movement),
	}
}

func (s state) clone() state {
	c := state{
		products:  make(map[string]entity.Product, len(s.products)),
		movements: make(map[string]entity.Movement, len(s.movements)),
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.movements {
		c.movements[k] = v
	}
	return c
}

// Store dueño explícito del estado en memoria. Un único RWMutex protege productos y movimientos,
// de modo que la eliminación en cascada es atómica para cualquier lector.
type Store struct {
	mu       sync.RWMutex
	branches []entity.Branch
	data     state
	closed   bool
}

// NewStore construye un store vacío con las filiales indicadas (nil = semilla por defecto).
func NewStore(branches []entity.Branch) *Store {
	if branches == nil {
		branches = entity.DefaultBranches()
	}
	b := make([]entity.Branch, len(branches))
	copy(b, branches)
	return &Store{branches: b, data: newState()}
}

// Close libera el estado; operaciones posteriores devuelven domain.ErrStorageUnavailable.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.data = newState()
	return nil
}

// guard resuelve el bloqueo: los repos creados por TxRunner ya tienen el lock tomado.
type guard struct {
	s    *Store
	held bool
}

func (g guard) read() (func(), error) {
	if !g.held {
		g.s.mu.RLock()
	}
	release := func() {
		if !g.held {
			g.s.mu.RUnlock()
		}
	}
	if g.s.closed {
		release()
		return nil, domain.ErrStorageUnavailable
	}
	return release, nil
}

func (g guard) write() (func(), error) {
	if !g.held {
		g.s.mu.Lock()
	}
	release := func() {
		if !g.held {
			g.s.mu.Unlock()
		}
	}
	if g.s.closed {
		release()
		return nil, domain.ErrStorageUnavailable
	}
	return release, nil
}
