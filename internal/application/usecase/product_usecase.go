package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pasqualotto/controle-estoque/internal/application/dto"
	"github.com/pasqualotto/controle-estoque/internal/domain"
	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
	"github.com/pasqualotto/controle-estoque/internal/domain/repository"
	"github.com/pasqualotto/controle-estoque/pkg/logger"
	"github.com/pasqualotto/controle-estoque/pkg/textsearch"
)

// ProductUseCase catálogo de productos por filial. Los productos no se editan;
// la cantidad en stock no es parte del producto (se deriva de los movimientos).
type ProductUseCase struct {
	repo     repository.ProductRepository
	branches repository.BranchRepository
	log      *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, branches repository.BranchRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, branches: branches, log: log}
}

// RegisterProduct registra un producto en una filial.
// Código y nombre se guardan sin espacios en los extremos.
func (uc *ProductUseCase) RegisterProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	code := strings.TrimSpace(in.Code)
	name := strings.TrimSpace(in.Name)
	if code == "" || name == "" {
		return nil, fmt.Errorf("%w: código y nombre son obligatorios", domain.ErrInvalidInput)
	}
	if in.UnitPrice.LessThan(entity.MinUnitPrice) {
		return nil, fmt.Errorf("%w: valor unitario mínimo %s", domain.ErrInvalidInput, entity.MinUnitPrice.StringFixed(2))
	}
	if in.UnitPrice.GreaterThan(entity.MaxUnitPrice) {
		return nil, fmt.Errorf("%w: valor unitario máximo %s", domain.ErrInvalidInput, entity.MaxUnitPrice.StringFixed(2))
	}
	if !in.UnitPrice.Equal(in.UnitPrice.Round(entity.UnitPriceScale)) {
		return nil, fmt.Errorf("%w: el valor unitario admite %d decimales", domain.ErrInvalidInput, entity.UnitPriceScale)
	}
	branch, err := uc.branches.GetByID(ctx, in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, fmt.Errorf("filial %d: %w", in.BranchID, domain.ErrNotFound)
	}
	existing, err := uc.repo.GetByBranchAndCode(ctx, in.BranchID, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateCode
	}

	product := &entity.Product{
		ID:           uuid.New().String(),
		Code:         code,
		Name:         name,
		UnitPrice:    in.UnitPrice,
		BranchID:     in.BranchID,
		RegisteredAt: time.Now().UTC(),
	}
	// La unicidad la vuelve a verificar el repositorio ante registros concurrentes.
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("product_id", product.ID).
		Str("code", product.Code).
		Int("branch_id", product.BranchID).
		Msg("producto registrado")
	return toProductResponse(product), nil
}

// FindByCode busca un producto por código exacto (sensible a mayúsculas) en una filial.
func (uc *ProductUseCase) FindByCode(ctx context.Context, branchID int, code string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByBranchAndCode(ctx, branchID, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil || product == nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ListByBranch lista los productos de la filial, más recientes primero.
// Una filial sin productos (o inexistente) devuelve una lista vacía.
func (uc *ProductUseCase) ListByBranch(ctx context.Context, branchID int, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, &branchID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if !textsearch.Contains(p.Code, filter.Code) || !textsearch.Contains(p.Name, filter.Name) {
			continue
		}
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// RemoveProducts elimina los productos y todos sus movimientos como una sola unidad.
// Ids inexistentes se ignoran.
func (uc *ProductUseCase) RemoveProducts(ctx context.Context, ids []string) (*dto.RemoveResponse, error) {
	if len(ids) == 0 {
		return &dto.RemoveResponse{}, nil
	}
	n, err := uc.repo.DeleteWithMovements(ctx, ids)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("requested", len(ids)).Int64("removed", n).Msg("productos eliminados con sus movimientos")
	return &dto.RemoveResponse{Removed: n}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		UnitPrice:    p.UnitPrice,
		BranchID:     p.BranchID,
		RegisteredAt: p.RegisteredAt,
	}
}
