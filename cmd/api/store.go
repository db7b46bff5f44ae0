package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/pasqualotto/controle-estoque/internal/application/inventory"
	"github.com/pasqualotto/controle-estoque/internal/domain"
	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
	"github.com/pasqualotto/controle-estoque/internal/domain/repository"
	"github.com/pasqualotto/controle-estoque/internal/infrastructure/memory"
	"github.com/pasqualotto/controle-estoque/internal/infrastructure/postgres"
	"github.com/pasqualotto/controle-estoque/pkg/config"
	"github.com/pasqualotto/controle-estoque/pkg/logger"
)

// backend agrupa los adaptadores de persistencia elegidos una sola vez al arrancar.
type backend struct {
	name      string
	branches  repository.BranchRepository
	products  repository.ProductRepository
	movements repository.MovementRepository
	stock     repository.StockRepository
	tx        inventory.TxRunner
	close     func()
}

// openBackend aplica STORE_MODE. En "auto" un PostgreSQL ausente o caído degrada a memoria.
func openBackend(ctx context.Context, cfg *config.Config, log *logger.Logger) (*backend, error) {
	switch cfg.Store.Mode {
	case config.StoreModeMemory:
		return openMemory(), nil
	case config.StoreModePostgres:
		return openPostgres(ctx, cfg.DB)
	}

	if !cfg.DB.Configured() {
		log.Warn().Msg("PostgreSQL no configurado: usando almacenamiento en memoria (datos no persistentes)")
		return openMemory(), nil
	}
	b, err := openPostgres(ctx, cfg.DB)
	if errors.Is(err, domain.ErrStorageUnavailable) {
		log.Warn().Err(err).Msg("PostgreSQL no disponible: modo degradado en memoria (datos no persistentes)")
		return openMemory(), nil
	}
	return b, err
}

func openMemory() *backend {
	s := memory.NewStore(entity.DefaultBranches())
	return &backend{
		name:      config.StoreModeMemory,
		branches:  memory.NewBranchRepository(s),
		products:  memory.NewProductRepository(s),
		movements: memory.NewMovementRepository(s),
		stock:     memory.NewStockRepository(s),
		tx:        memory.NewTxRunner(s),
		close:     func() { _ = s.Close() },
	}
}

func openPostgres(ctx context.Context, cfg config.DBConfig) (*backend, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, pool, entity.DefaultBranches()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	return &backend{
		name:      config.StoreModePostgres,
		branches:  postgres.NewBranchRepository(pool),
		products:  postgres.NewProductRepository(pool),
		movements: postgres.NewMovementRepository(pool),
		stock:     postgres.NewStockRepository(pool),
		tx:        postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}
