package entity

import "github.com/shopspring/decimal"

// StockLine es la vista derivada (no persistida) de un producto con su cantidad actual.
// CurrentQuantity se calcula siempre desde los movimientos en el momento de la consulta.
type StockLine struct {
	ProductID       string
	Code            string
	Name            string
	UnitPrice       decimal.Decimal
	CurrentQuantity int64
	BranchID        int
}

// TotalValue = CurrentQuantity × UnitPrice.
func (l StockLine) TotalValue() decimal.Decimal {
	return decimal.NewFromInt(l.CurrentQuantity).Mul(l.UnitPrice)
}

// BranchSummary agregados de una filial sobre su vista de stock.
// AverageUnitPrice es la media simple de UnitPrice (no ponderada por cantidad).
type BranchSummary struct {
	BranchID         int
	BranchName       string
	ProductCount     int
	TotalQuantity    int64
	AverageUnitPrice decimal.Decimal
	TotalStockValue  decimal.Decimal
}
