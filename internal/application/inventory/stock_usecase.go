package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/pasqualotto/controle-estoque/internal/application/dto"
	"github.com/pasqualotto/controle-estoque/internal/domain"
	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
	domaininv "github.com/pasqualotto/controle-estoque/internal/domain/inventory"
	"github.com/pasqualotto/controle-estoque/internal/domain/repository"
	"github.com/pasqualotto/controle-estoque/pkg/textsearch"
	"github.com/shopspring/decimal"
)

// Filtros de disponibilidad de la vista de stock.
const (
	AvailabilityAll        = "all"
	AvailabilityInStock    = "in_stock"
	AvailabilityOutOfStock = "out_of_stock"
)

// StockUseCase lado de lectura: deriva cantidades y valores desde catálogo + libro.
// No guarda estado propio.
type StockUseCase struct {
	stockRepo  repository.StockRepository
	branchRepo repository.BranchRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stockRepo repository.StockRepository, branchRepo repository.BranchRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, branchRepo: branchRepo}
}

// CurrentStock devuelve Σ Entrada − Σ Saída del producto (0 sin movimientos o sin producto).
func (uc *StockUseCase) CurrentStock(ctx context.Context, productID string) (int64, error) {
	return uc.stockRepo.CurrentQuantity(ctx, productID)
}

// StockView una línea por producto; branchID nil = todas las filiales.
func (uc *StockUseCase) StockView(ctx context.Context, branchID *int) ([]entity.StockLine, error) {
	return uc.stockRepo.Lines(ctx, branchID)
}

// BranchSummary agregados por nombre de filial sobre StockView(nil).
// AverageUnitPrice es la media simple de los precios, sin ponderar por cantidad.
func (uc *StockUseCase) BranchSummary(ctx context.Context) (map[string]entity.BranchSummary, error) {
	lines, err := uc.stockRepo.Lines(ctx, nil)
	if err != nil {
		return nil, err
	}
	branches, err := uc.branchList(ctx)
	if err != nil {
		return nil, err
	}
	return domaininv.Summarize(lines, branches), nil
}

// Overview vista filtrada con indicadores, para la pantalla de stock.
func (uc *StockUseCase) Overview(ctx context.Context, branchID *int, in dto.StockViewRequest) (*dto.StockViewResponse, error) {
	availability := strings.ToLower(strings.TrimSpace(in.Availability))
	switch availability {
	case "", AvailabilityAll, AvailabilityInStock, AvailabilityOutOfStock:
	default:
		return nil, fmt.Errorf("%w: availability %q", domain.ErrInvalidInput, in.Availability)
	}

	lines, err := uc.stockRepo.Lines(ctx, branchID)
	if err != nil {
		return nil, err
	}

	stats := dto.StockStats{TotalProducts: len(lines), TotalValue: decimal.Zero}
	items := make([]dto.StockLineResponse, 0, len(lines))
	for _, l := range lines {
		if l.CurrentQuantity > 0 {
			stats.WithStock++
		}
		switch availability {
		case AvailabilityInStock:
			if l.CurrentQuantity <= 0 {
				continue
			}
		case AvailabilityOutOfStock:
			if l.CurrentQuantity != 0 {
				continue
			}
		}
		if !textsearch.Contains(l.Code, in.Q) && !textsearch.Contains(l.Name, in.Q) {
			continue
		}
		items = append(items, ToStockLineResponse(l))
		stats.TotalValue = stats.TotalValue.Add(l.TotalValue())
	}
	stats.WithoutStock = stats.TotalProducts - stats.WithStock
	stats.TotalValue = stats.TotalValue.Round(2)
	return &dto.StockViewResponse{Items: items, Stats: stats}, nil
}

// SummaryResponse BranchSummary convertido a DTO.
func (uc *StockUseCase) SummaryResponse(ctx context.Context) (map[string]dto.BranchSummaryResponse, error) {
	summary, err := uc.BranchSummary(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]dto.BranchSummaryResponse, len(summary))
	for name, s := range summary {
		out[name] = dto.BranchSummaryResponse{
			BranchID:         s.BranchID,
			BranchName:       s.BranchName,
			ProductCount:     s.ProductCount,
			TotalQuantity:    s.TotalQuantity,
			AverageUnitPrice: s.AverageUnitPrice,
			TotalStockValue:  s.TotalStockValue,
		}
	}
	return out, nil
}

func (uc *StockUseCase) branchList(ctx context.Context) ([]entity.Branch, error) {
	list, err := uc.branchRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Branch, 0, len(list))
	for _, b := range list {
		out = append(out, *b)
	}
	return out, nil
}

// ToStockLineResponse convierte una línea de stock con su valor total.
func ToStockLineResponse(l entity.StockLine) dto.StockLineResponse {
	return dto.StockLineResponse{
		ProductID:       l.ProductID,
		Code:            l.Code,
		Name:            l.Name,
		UnitPrice:       l.UnitPrice,
		CurrentQuantity: l.CurrentQuantity,
		TotalValue:      l.TotalValue().Round(2),
		BranchID:        l.BranchID,
	}
}
