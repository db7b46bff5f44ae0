package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/pasqualotto/controle-estoque/internal/application/dto"
	"github.com/pasqualotto/controle-estoque/internal/application/inventory"
	"github.com/pasqualotto/controle-estoque/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc    *usecase.ProductUseCase
	stock *inventory.StockUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, stock *inventory.StockUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, stock: stock}
}

// Create godoc
// @Summary      Registrar producto en la filial
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        branchID  path  int  true  "ID de la filial"
// @Param        body  body  dto.CreateProductRequest  true  "code, name, unit_price"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/branches/{branchID}/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	in.BranchID, _ = branchParam(c)
	out, err := h.uc.RegisterProduct(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByBranch godoc
// @Summary      Listar productos de la filial
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        branchID  path   int     true   "ID de la filial"
// @Param        code      query  string  false  "Filtro por código (subcadena)"
// @Param        name      query  string  false  "Filtro por nombre (subcadena)"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/branches/{branchID}/products [get]
func (h *ProductHandler) ListByBranch(c *fiber.Ctx) error {
	var filter dto.ProductFilter
	if err := c.QueryParser(&filter); err != nil {
		return invalidBody(c)
	}
	branchID, _ := branchParam(c)
	out, err := h.uc.ListByBranch(c.UserContext(), branchID, filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindByCode godoc
// @Summary      Buscar producto por código exacto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        branchID  path  int     true  "ID de la filial"
// @Param        code      path  string  true  "Código del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/branches/{branchID}/products/by-code/{code} [get]
func (h *ProductHandler) FindByCode(c *fiber.Ctx) error {
	branchID, _ := branchParam(c)
	// Fiber entrega el parámetro tal como llegó en la URL (%20, %C3%89...).
	code, err := url.PathUnescape(c.Params("code"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código mal codificado"})
	}
	out, err := h.uc.FindByCode(c.UserContext(), branchID, code)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	if !CanAccessBranch(c, out.BranchID) {
		return forbiddenBranch(c)
	}
	return c.JSON(out)
}

// CurrentStock godoc
// @Summary      Stock actual del producto (Σ Entrada − Σ Saída)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.CurrentStockResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [get]
func (h *ProductHandler) CurrentStock(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	// Producto inexistente: stock 0, no se filtra por filial.
	if product != nil && !CanAccessBranch(c, product.BranchID) {
		return forbiddenBranch(c)
	}
	qty, err := h.stock.CurrentStock(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CurrentStockResponse{ProductID: id, CurrentQuantity: qty})
}

// Remove godoc
// @Summary      Eliminar productos con todos sus movimientos
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RemoveRequest  true  "ids"
// @Success      200   {object}  dto.RemoveResponse
// @Router       /api/products [delete]
func (h *ProductHandler) Remove(c *fiber.Ctx) error {
	var in dto.RemoveRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RemoveProducts(c.UserContext(), in.IDs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
