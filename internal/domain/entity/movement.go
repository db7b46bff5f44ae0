package entity

import (
	"math"
	"time"
)

// MaxQuantity límite por movimiento; coincide con movimentacoes.quantidade INTEGER.
const MaxQuantity int64 = math.MaxInt32

// MovementKind tipo de movimiento del libro. Los valores son los persistidos en movimentacoes.tipo.
type MovementKind string

// Tipos de movimiento de inventario.
const (
	MovementEntrada MovementKind = "Entrada" // entrada de stock
	MovementSaida   MovementKind = "Saída"   // salida de stock
)

// ParseMovementKind acepta "Entrada", "Saída" y la grafía sin acento "Saida".
func ParseMovementKind(s string) (MovementKind, bool) {
	switch s {
	case string(MovementEntrada):
		return MovementEntrada, true
	case string(MovementSaida), "Saida":
		return MovementSaida, true
	}
	return "", false
}

// Valid indica si el tipo es uno de los reconocidos.
func (k MovementKind) Valid() bool {
	return k == MovementEntrada || k == MovementSaida
}

// Sign devuelve +1 para Entrada y -1 para Saída.
func (k MovementKind) Sign() int64 {
	if k == MovementSaida {
		return -1
	}
	return 1
}

// Movement representa un asiento del libro de movimientos (solo se agrega o se elimina).
// BranchID es copia desnormalizada de la filial del producto al momento de crearlo.
type Movement struct {
	ID         string
	ProductID  string
	Kind       MovementKind
	Quantity   int64 // siempre > 0; el signo lo da Kind
	Sector     string
	Note       string // opcional
	BranchID   int
	OccurredAt time.Time
}

// Delta devuelve la contribución con signo del movimiento al stock.
func (m Movement) Delta() int64 {
	return m.Kind.Sign() * m.Quantity
}

// MovementDetail es un movimiento unido con el código y nombre de su producto (para listados).
type MovementDetail struct {
	Movement
	ProductCode string
	ProductName string
}
