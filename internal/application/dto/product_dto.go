package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para registrar un producto. BranchID llega por la ruta.
type CreateProductRequest struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	BranchID  int             `json:"-"`
}

// ProductFilter filtros opcionales del listado (subcadena, sin distinguir mayúsculas).
type ProductFilter struct {
	Code string `query:"code"`
	Name string `query:"name"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	BranchID     int             `json:"branch_id"`
	RegisteredAt time.Time       `json:"registered_at"`
}

// ProductListResponse lista de productos de una filial.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
