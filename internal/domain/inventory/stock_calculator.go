package inventory

import (
	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CurrentQuantity implementa la derivación del stock (servicio de dominio).
// StockActual = Σ Entrada − Σ Saída; independiente del orden; 0 sin movimientos.
func CurrentQuantity(movements []entity.Movement) int64 {
	var total int64
	for _, m := range movements {
		total += m.Delta()
	}
	return total
}

// QuantitiesByProduct aplica la misma regla agrupando por producto.
func QuantitiesByProduct(movements []entity.Movement) map[string]int64 {
	out := make(map[string]int64)
	for _, m := range movements {
		out[m.ProductID] += m.Delta()
	}
	return out
}

// Summarize agrupa la vista de stock por nombre de filial.
// Las líneas cuya filial no está en branches se descartan; las filiales sin productos no aparecen.
func Summarize(lines []entity.StockLine, branches []entity.Branch) map[string]entity.BranchSummary {
	names := make(map[int]string, len(branches))
	for _, b := range branches {
		names[b.ID] = b.Name
	}

	type acc struct {
		summary  entity.BranchSummary
		priceSum decimal.Decimal
	}
	groups := make(map[string]*acc)
	for _, l := range lines {
		name, ok := names[l.BranchID]
		if !ok {
			continue
		}
		g, ok := groups[name]
		if !ok {
			g = &acc{summary: entity.BranchSummary{
				BranchID:        l.BranchID,
				BranchName:      name,
				TotalStockValue: decimal.Zero,
			}, priceSum: decimal.Zero}
			groups[name] = g
		}
		g.summary.ProductCount++
		g.summary.TotalQuantity += l.CurrentQuantity
		g.summary.TotalStockValue = g.summary.TotalStockValue.Add(l.TotalValue())
		g.priceSum = g.priceSum.Add(l.UnitPrice)
	}

	out := make(map[string]entity.BranchSummary, len(groups))
	for name, g := range groups {
		s := g.summary
		s.AverageUnitPrice = g.priceSum.Div(decimal.NewFromInt(int64(s.ProductCount))).Round(2)
		s.TotalStockValue = s.TotalStockValue.Round(2)
		out[name] = s
	}
	return out
}
