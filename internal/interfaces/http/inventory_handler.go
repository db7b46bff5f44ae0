package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pasqualotto/controle-estoque/internal/application/dto"
	"github.com/pasqualotto/controle-estoque/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP del libro de movimientos.
type InventoryHandler struct {
	register *inventory.RegisterMovementUseCase
	ledger   *inventory.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(register *inventory.RegisterMovementUseCase, ledger *inventory.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{register: register, ledger: ledger}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento (Entrada/Saída)
// @Description  Las Saídas se rechazan con 409 si superan el stock actual del producto.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        branchID  path  int  true  "ID de la filial"
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, type, quantity, sector, note, occurred_at"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/branches/{branchID}/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	branchID, _ := branchParam(c)
	out, err := h.register.RegisterMovementFromRequest(c.UserContext(), branchID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByBranch godoc
// @Summary      Listar movimientos de la filial (más recientes primero)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        branchID  path   int     true   "ID de la filial"
// @Param        type      query  string  false  "Entrada | Saída"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/branches/{branchID}/movements [get]
func (h *InventoryHandler) ListByBranch(c *fiber.Ctx) error {
	branchID, _ := branchParam(c)
	out, err := h.ledger.ListByBranch(c.UserContext(), branchID, c.Query("type"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Eliminar movimientos
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RemoveRequest  true  "ids"
// @Success      200   {object}  dto.RemoveResponse
// @Router       /api/movements [delete]
func (h *InventoryHandler) Remove(c *fiber.Ctx) error {
	var in dto.RemoveRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.ledger.RemoveMovements(c.UserContext(), in.IDs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
