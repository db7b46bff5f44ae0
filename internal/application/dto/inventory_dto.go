package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/branches/:branchID/movements.
type RegisterMovementRequest struct {
	ProductID  string     `json:"product_id"`
	Type       string     `json:"type"` // "Entrada" | "Saída" (se acepta "Saida")
	Quantity   int64      `json:"quantity"`
	Sector     string     `json:"sector"`
	Note       string     `json:"note,omitempty"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
}

// MovementResponse salida de un movimiento con código y nombre del producto.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductCode string    `json:"product_code,omitempty"`
	ProductName string    `json:"product_name,omitempty"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	Sector      string    `json:"sector"`
	Note        string    `json:"note,omitempty"`
	BranchID    int       `json:"branch_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// MovementListResponse listado del libro de una filial.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// CurrentStockResponse stock derivado de un producto.
type CurrentStockResponse struct {
	ProductID       string `json:"product_id"`
	CurrentQuantity int64  `json:"current_quantity"`
}

// StockViewRequest filtros de la vista de stock.
// Availability: "all" (o vacío), "in_stock", "out_of_stock". Q busca en código o nombre.
type StockViewRequest struct {
	Availability string `query:"availability"`
	Q            string `query:"q"`
}

// StockLineResponse una línea de la vista de stock.
type StockLineResponse struct {
	ProductID       string          `json:"product_id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	CurrentQuantity int64           `json:"current_quantity"`
	TotalValue      decimal.Decimal `json:"total_value"`
	BranchID        int             `json:"branch_id"`
}

// StockStats indicadores de la vista. Los conteos usan todas las líneas del alcance;
// TotalValue solo las líneas que pasaron los filtros.
type StockStats struct {
	TotalProducts int             `json:"total_products"`
	WithStock     int             `json:"with_stock"`
	WithoutStock  int             `json:"without_stock"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// StockViewResponse vista de stock filtrada con sus indicadores.
type StockViewResponse struct {
	Items []StockLineResponse `json:"items"`
	Stats StockStats          `json:"stats"`
}

// BranchSummaryResponse resumen de una filial.
type BranchSummaryResponse struct {
	BranchID         int             `json:"branch_id"`
	BranchName       string          `json:"branch_name"`
	ProductCount     int             `json:"product_count"`
	TotalQuantity    int64           `json:"total_quantity"`
	AverageUnitPrice decimal.Decimal `json:"average_unit_price"`
	TotalStockValue  decimal.Decimal `json:"total_stock_value"`
}
