package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pasqualotto/controle-estoque/internal/application/dto"
	"github.com/pasqualotto/controle-estoque/internal/application/inventory"
)

// StockHandler maneja la vista de stock, el resumen por filial y el reporte PDF.
type StockHandler struct {
	stock  *inventory.StockUseCase
	report *inventory.ReportUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(stock *inventory.StockUseCase, report *inventory.ReportUseCase) *StockHandler {
	return &StockHandler{stock: stock, report: report}
}

// BranchView godoc
// @Summary      Vista de stock de la filial
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        branchID      path   int     true   "ID de la filial"
// @Param        availability  query  string  false  "all | in_stock | out_of_stock"
// @Param        q             query  string  false  "Búsqueda por código o nombre"
// @Success      200  {object}  dto.StockViewResponse
// @Router       /api/branches/{branchID}/stock [get]
func (h *StockHandler) BranchView(c *fiber.Ctx) error {
	branchID, _ := branchParam(c)
	return h.view(c, &branchID)
}

// GlobalView godoc
// @Summary      Vista de stock de todas las filiales
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        availability  query  string  false  "all | in_stock | out_of_stock"
// @Param        q             query  string  false  "Búsqueda por código o nombre"
// @Success      200  {object}  dto.StockViewResponse
// @Router       /api/stock [get]
func (h *StockHandler) GlobalView(c *fiber.Ctx) error {
	return h.view(c, nil)
}

func (h *StockHandler) view(c *fiber.Ctx, branchID *int) error {
	var in dto.StockViewRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.stock.Overview(c.UserContext(), branchID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen por filial (productos, cantidad, precio medio, valor)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]dto.BranchSummaryResponse
// @Router       /api/stock/summary [get]
func (h *StockHandler) Summary(c *fiber.Ctx) error {
	out, err := h.stock.SummaryResponse(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// BranchReport godoc
// @Summary      Reporte PDF del stock de la filial
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Param        branchID  path  int  true  "ID de la filial"
// @Success      200  {file}  binary
// @Router       /api/branches/{branchID}/stock/report.pdf [get]
func (h *StockHandler) BranchReport(c *fiber.Ctx) error {
	branchID, _ := branchParam(c)
	return h.pdf(c, &branchID, fmt.Sprintf("estoque-filial-%d.pdf", branchID))
}

// GlobalReport godoc
// @Summary      Reporte PDF del stock de todas las filiales
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/stock/report.pdf [get]
func (h *StockHandler) GlobalReport(c *fiber.Ctx) error {
	return h.pdf(c, nil, "estoque-geral.pdf")
}

func (h *StockHandler) pdf(c *fiber.Ctx, branchID *int, filename string) error {
	out, err := h.report.StockReportPDF(c.UserContext(), branchID)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(out)
}
