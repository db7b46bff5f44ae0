package inventory

import (
	"context"

	"github.com/pasqualotto/controle-estoque/internal/application/dto"
)

// RegisterMovementFromRequest adapta el request HTTP al caso de uso RegisterMovement(ctx, MovementInput).
// branchID viene de la ruta; el producto debe pertenecer a esa filial.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, branchID int, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	input := MovementInput{
		ProductID:  in.ProductID,
		Kind:       in.Type,
		Quantity:   in.Quantity,
		Sector:     in.Sector,
		Note:       in.Note,
		BranchID:   branchID,
		OccurredAt: in.OccurredAt,
	}
	mov, err := uc.RegisterMovement(ctx, input)
	if err != nil {
		return nil, err
	}
	resp := ToMovementResponse(mov)
	return &resp, nil
}
