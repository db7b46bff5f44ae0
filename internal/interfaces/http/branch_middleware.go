package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/pasqualotto/controle-estoque/internal/application/dto"
)

// branchChecker es el contrato mínimo que necesita el middleware para verificar filiales.
// Lo implementa *usecase.BranchUseCase; el uso de interfaz evita el import circular.
type branchChecker interface {
	GetByID(ctx context.Context, id int) (*dto.BranchResponse, error)
}

// RequireBranch verifica que el parámetro :branchID sea una filial existente.
//
// Comportamiento:
//   - 400 Bad Request → :branchID no es un entero.
//   - 404 Not Found → filial inexistente.
//   - errores del registro → writeError (503 si el almacenamiento no está disponible).
func RequireBranch(checker branchChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := branchParam(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branchID debe ser un entero"})
		}
		branch, err := checker.GetByID(c.UserContext(), id)
		if err != nil {
			return writeError(c, err)
		}
		if branch == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "filial no encontrada"})
		}
		return c.Next()
	}
}

func branchParam(c *fiber.Ctx) (int, error) {
	return c.ParamsInt("branchID")
}
