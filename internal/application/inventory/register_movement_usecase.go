package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pasqualotto/controle-estoque/internal/domain"
	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
	"github.com/pasqualotto/controle-estoque/internal/domain/repository"
	"github.com/pasqualotto/controle-estoque/pkg/logger"
)

// RegisterMovementUseCase registra movimientos dentro de una transacción con bloqueo del producto
// (SELECT FOR UPDATE). Para Saída lee el stock fresco y rechaza antes de escribir si no alcanza.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, log *logger.Logger) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, log: log}
}

// RegisterMovement inicia una transacción, bloquea el producto, verifica stock si es Saída
// y agrega el asiento. Commit o Rollback los hace TxRunner.Run.
// Con stock insuficiente devuelve *domain.StockShortageError (errors.Is con domain.ErrInsufficientStock).
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in MovementInput) (*entity.Movement, error) {
	kind, err := in.validate()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	var created *entity.Movement
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		// Bloquea el producto: dos Saídas del mismo producto no leen el mismo stock
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("producto %s: %w", in.ProductID, domain.ErrNotFound)
		}
		mov, err := newMovement(product, kind, in, now)
		if err != nil {
			return err
		}
		if kind == entity.MovementSaida {
			current, err := stockRepo.CurrentQuantity(ctx, product.ID)
			if err != nil {
				return err
			}
			if in.Quantity > current {
				return &domain.StockShortageError{ProductID: product.ID, Available: current, Requested: in.Quantity}
			}
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		var shortage *domain.StockShortageError
		if errors.As(err, &shortage) {
			uc.log.Branch(in.BranchID).Warn().
				Str("product_id", shortage.ProductID).
				Int64("available", shortage.Available).
				Int64("requested", shortage.Requested).
				Msg("saída rechazada por stock insuficiente")
		}
		return nil, err
	}
	logMovement(uc.log, created)
	return created, nil
}
