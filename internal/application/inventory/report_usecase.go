package inventory

import (
	"context"
	"fmt"

	"github.com/pasqualotto/controle-estoque/internal/domain"
)

// ReportUseCase exporta la vista de stock como documento imprimible.
type ReportUseCase struct {
	stock     *StockUseCase
	generator StockReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(stock *StockUseCase, generator StockReportGenerator) *ReportUseCase {
	return &ReportUseCase{stock: stock, generator: generator}
}

// StockReportPDF genera el reporte de la filial indicada o de todas (branchID nil).
func (uc *ReportUseCase) StockReportPDF(ctx context.Context, branchID *int) ([]byte, error) {
	branches, err := uc.stock.branchList(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(branches))
	for _, b := range branches {
		names[b.ID] = b.Name
	}

	title := "Estoque Atual - Todas as Filiais"
	if branchID != nil {
		name, ok := names[*branchID]
		if !ok {
			return nil, fmt.Errorf("filial %d: %w", *branchID, domain.ErrNotFound)
		}
		title = "Estoque Atual - " + name
	}

	lines, err := uc.stock.StockView(ctx, branchID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateStockReport(ctx, StockReport{Title: title, Branches: names, Lines: lines})
}
