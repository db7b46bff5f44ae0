package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/pasqualotto/controle-estoque/internal/application/inventory"
	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
	"github.com/pasqualotto/controle-estoque/internal/infrastructure/memory"
	"github.com/pasqualotto/controle-estoque/pkg/logger"
)

type fixture struct {
	store    *memory.Store
	products *memory.ProductRepo
	ledger   *inventory.LedgerUseCase
	register *inventory.RegisterMovementUseCase
	stock    *inventory.StockUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := memory.NewStore(nil)
	t.Cleanup(func() { _ = s.Close() })
	products := memory.NewProductRepository(s)
	movements := memory.NewMovementRepository(s)
	return &fixture{
		store:    s,
		products: products,
		ledger:   inventory.NewLedgerUseCase(products, movements, logger.Nop()),
		register: inventory.NewRegisterMovementUseCase(memory.NewTxRunner(s), logger.Nop()),
		stock:    inventory.NewStockUseCase(memory.NewStockRepository(s), memory.NewBranchRepository(s)),
	}
}

// addProduct registra un producto directamente en el repositorio.
func (f *fixture) addProduct(t *testing.T, id, code, name, price string, branch int) *entity.Product {
	t.Helper()
	p := &entity.Product{
		ID:           id,
		Code:         code,
		Name:         name,
		UnitPrice:    decimal.RequireFromString(price),
		BranchID:     branch,
		RegisteredAt: time.Now().UTC(),
	}
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func (f *fixture) record(t *testing.T, productID string, kind entity.MovementKind, qty int64, branch int) *entity.Movement {
	t.Helper()
	m, err := f.ledger.RecordMovement(context.Background(), inventory.MovementInput{
		ProductID: productID, Kind: string(kind), Quantity: qty, Sector: "Manutenção", BranchID: branch,
	})
	require.NoError(t, err)
	return m
}
