package inventory_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
	"github.com/pasqualotto/controle-estoque/internal/domain/inventory"
)

func mov(productID string, kind entity.MovementKind, qty int64) entity.Movement {
	return entity.Movement{ProductID: productID, Kind: kind, Quantity: qty}
}

func TestCurrentQuantity_SinMovimientosEsCero(t *testing.T) {
	assert.Equal(t, int64(0), inventory.CurrentQuantity(nil))
}

func TestCurrentQuantity_EntradaMenosSaida(t *testing.T) {
	movs := []entity.Movement{
		mov("p1", entity.MovementEntrada, 50),
		mov("p1", entity.MovementSaida, 20),
	}
	assert.Equal(t, int64(30), inventory.CurrentQuantity(movs))
}

// El resultado no depende del orden de los movimientos.
func TestCurrentQuantity_IndependienteDelOrden(t *testing.T) {
	movs := []entity.Movement{
		mov("p1", entity.MovementEntrada, 7),
		mov("p1", entity.MovementSaida, 3),
		mov("p1", entity.MovementEntrada, 11),
		mov("p1", entity.MovementSaida, 9),
		mov("p1", entity.MovementSaida, 30),
		mov("p1", entity.MovementEntrada, 1),
	}
	want := int64(7 + 11 + 1 - 3 - 9 - 30)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		r.Shuffle(len(movs), func(a, b int) { movs[a], movs[b] = movs[b], movs[a] })
		require.Equal(t, want, inventory.CurrentQuantity(movs))
	}
}

func TestQuantitiesByProduct(t *testing.T) {
	movs := []entity.Movement{
		mov("p1", entity.MovementEntrada, 10),
		mov("p2", entity.MovementEntrada, 4),
		mov("p1", entity.MovementSaida, 3),
	}
	got := inventory.QuantitiesByProduct(movs)
	assert.Equal(t, map[string]int64{"p1": 7, "p2": 4}, got)
}

// Escenario: dos productos en la filial A con precios 10.00 y 20.00 y cantidades 3 y 0.
func TestSummarize_MediaSimpleNoPonderada(t *testing.T) {
	branches := []entity.Branch{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	lines := []entity.StockLine{
		{ProductID: "p1", UnitPrice: decimal.RequireFromString("10.00"), CurrentQuantity: 3, BranchID: 1},
		{ProductID: "p2", UnitPrice: decimal.RequireFromString("20.00"), CurrentQuantity: 0, BranchID: 1},
	}

	got := inventory.Summarize(lines, branches)
	require.Contains(t, got, "A")
	assert.NotContains(t, got, "B", "filial sin productos no aparece en el resumen")

	a := got["A"]
	assert.Equal(t, 2, a.ProductCount)
	assert.Equal(t, int64(3), a.TotalQuantity)
	assert.Equal(t, "15.00", a.AverageUnitPrice.StringFixed(2))
	assert.Equal(t, "30.00", a.TotalStockValue.StringFixed(2))
}

func TestSummarize_DescartaFilialDesconocida(t *testing.T) {
	lines := []entity.StockLine{{ProductID: "p1", UnitPrice: decimal.NewFromInt(1), CurrentQuantity: 1, BranchID: 99}}
	assert.Empty(t, inventory.Summarize(lines, entity.DefaultBranches()))
}
