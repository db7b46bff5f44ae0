package inventory

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
)

// MovementInput entrada para registrar un movimiento en el libro.
// OccurredAt nil usa la hora actual.
type MovementInput struct {
	ProductID  string
	Kind       string
	Quantity   int64
	Sector     string
	Note       string
	BranchID   int
	OccurredAt *time.Time
}

// validate devuelve el tipo normalizado o ErrInvalidInput.
func (in MovementInput) validate() (entity.MovementKind, error) {
	kind, ok := entity.ParseMovementKind(strings.TrimSpace(in.Kind))
	if !ok {
		return "", fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, in.Kind)
	}
	if in.Quantity <= 0 {
		return "", fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.Quantity > entity.MaxQuantity {
		return "", fmt.Errorf("%w: la cantidad máxima por movimiento es %d", domain.ErrInvalidInput, entity.MaxQuantity)
	}
	if strings.TrimSpace(in.Sector) == "" {
		return "", fmt.Errorf("%w: el sector es obligatorio", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.ProductID) == "" {
		return "", fmt.Errorf("%w: producto obligatorio", domain.ErrInvalidInput)
	}
	return kind, nil
}

// newMovement arma el asiento para product. BranchID se copia del producto;
// si la entrada trae otra filial se rechaza.
func newMovement(product *entity.Product, kind entity.MovementKind, in MovementInput, now time.Time) (*entity.Movement, error) {
	if in.BranchID != 0 && in.BranchID != product.BranchID {
		return nil, fmt.Errorf("%w: el producto pertenece a la filial %d", domain.ErrInvalidInput, product.BranchID)
	}
	occurredAt := now
	if in.OccurredAt != nil && !in.OccurredAt.IsZero() {
		occurredAt = in.OccurredAt.UTC()
	}
	return &entity.Movement{
		ID:         uuid.New().String(),
		ProductID:  product.ID,
		Kind:       kind,
		Quantity:   in.Quantity,
		Sector:     strings.TrimSpace(in.Sector),
		Note:       strings.TrimSpace(in.Note),
		BranchID:   product.BranchID,
		OccurredAt: occurredAt,
	}, nil
}

// LedgerUseCase libro de movimientos: solo agrega o elimina asientos.
// RecordMovement no verifica stock; para Saída usar RegisterMovementUseCase.
type LedgerUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	log         *logger.Logger
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(productRepo repository.ProductRepository, movRepo repository.MovementRepository, log *logger.Logger) *LedgerUseCase {
	return &LedgerUseCase{productRepo: productRepo, movRepo: movRepo, log: log}
}

// RecordMovement valida y agrega un movimiento al libro.
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, in MovementInput) (*entity.Movement, error) {
	kind, err := in.validate()
	if err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", in.ProductID, domain.ErrNotFound)
	}
	mov, err := newMovement(product, kind, in, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := uc.movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}
	logMovement(uc.log, mov)
	return mov, nil
}

// ListByBranch lista el libro de la filial, del más reciente al más antiguo.
// kind vacío no filtra.
func (uc *LedgerUseCase) ListByBranch(ctx context.Context, branchID int, kind string) (*dto.MovementListResponse, error) {
	filter := repository.MovementFilter{BranchID: &branchID}
	if kind = strings.TrimSpace(kind); kind != "" {
		k, ok := entity.ParseMovementKind(kind)
		if !ok {
			return nil, fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, kind)
		}
		filter.Kind = k
	}
	list, err := uc.movRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, d := range list {
		items = append(items, toMovementResponse(&d.Movement, d.ProductCode, d.ProductName))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// RemoveMovements elimina los movimientos indicados. Ids inexistentes se ignoran.
func (uc *LedgerUseCase) RemoveMovements(ctx context.Context, ids []string) (*dto.RemoveResponse, error) {
	if len(ids) == 0 {
		return &dto.RemoveResponse{}, nil
	}
	n, err := uc.movRepo.Delete(ctx, ids)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("requested", len(ids)).Int64("removed", n).Msg("movimientos eliminados")
	return &dto.RemoveResponse{Removed: n}, nil
}

func logMovement(log *logger.Logger, m *entity.Movement) {
	log.Branch(m.BranchID).Info().
		Str("movement_id", m.ID).
		Str("product_id", m.ProductID).
		Str("type", string(m.Kind)).
		Int64("quantity", m.Quantity).
		Msg("movimiento registrado")
}

// ToMovementResponse convierte un movimiento recién creado (sin datos del producto).
func ToMovementResponse(m *entity.Movement) dto.MovementResponse {
	return toMovementResponse(m, "", "")
}

func toMovementResponse(m *entity.Movement, code, name string) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductCode: code,
		ProductName: name,
		Type:        string(m.Kind),
		Quantity:    m.Quantity,
		Sector:      m.Sector,
		Note:        m.Note,
		BranchID:    m.BranchID,
		OccurredAt:  m.OccurredAt,
	}
}
