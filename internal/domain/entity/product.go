package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Límites del valor unitario; el máximo es el de produtos.valor DECIMAL(10,2).
var (
	MinUnitPrice = decimal.RequireFromString("0.01")
	MaxUnitPrice = decimal.RequireFromString("99999999.99")
)

// UnitPriceScale cantidad de decimales admitidos en el valor unitario.
const UnitPriceScale = 2

// Product representa un producto registrado en una filial.
// (Code, BranchID) es único; el producto no se edita, solo se elimina junto con sus movimientos.
// La cantidad en stock no es un campo: se deriva del libro de movimientos.
type Product struct {
	ID           string
	Code         string // único por filial, sensible a mayúsculas
	Name         string
	UnitPrice    decimal.Decimal
	BranchID     int
	RegisteredAt time.Time
}
