package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pasqualotto/controle-estoque/internal/application/inventory"
	"github.com/pasqualotto/controle-estoque/internal/application/usecase"
	"github.com/pasqualotto/controle-estoque/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BranchUC         *usecase.BranchUseCase
	ProductUC        *usecase.ProductUseCase
	Ledger           *inventory.LedgerUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	Stock            *inventory.StockUseCase
	Report           *inventory.ReportUseCase
	// StoreName backend activo ("postgres" o "memory"), informado en /health.
	StoreName string
	// JWTSecret vacío deshabilita la autenticación (uso local).
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health(deps.StoreName))

	api := app.Group("/api")

	// Con JWT: operador solo en su filial; vistas globales y eliminaciones solo admin.
	var adminOnly, branchAccess fiber.Handler = passThrough, passThrough
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
		adminOnly = RequireRole(jwt.RoleAdmin)
		branchAccess = RequireBranchAccess()
	}
	requireBranch := RequireBranch(deps.BranchUC)
	inBranch := func(h fiber.Handler) []fiber.Handler {
		return []fiber.Handler{requireBranch, branchAccess, h}
	}

	branchHandler := NewBranchHandler(deps.BranchUC)
	productHandler := NewProductHandler(deps.ProductUC, deps.Stock)
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.Ledger)
	stockHandler := NewStockHandler(deps.Stock, deps.Report)

	// Filiales
	api.Get("/branches", branchHandler.List)
	api.Get("/branches/:branchID", branchHandler.GetByID)

	// Catálogo por filial
	api.Get("/branches/:branchID/products", inBranch(productHandler.ListByBranch)...)
	api.Post("/branches/:branchID/products", inBranch(productHandler.Create)...)
	api.Get("/branches/:branchID/products/by-code/:code", inBranch(productHandler.FindByCode)...)

	// Libro de movimientos por filial
	api.Get("/branches/:branchID/movements", inBranch(inventoryHandler.ListByBranch)...)
	api.Post("/branches/:branchID/movements", inBranch(inventoryHandler.RegisterMovement)...)

	// Stock por filial
	api.Get("/branches/:branchID/stock", inBranch(stockHandler.BranchView)...)
	api.Get("/branches/:branchID/stock/report.pdf", inBranch(stockHandler.BranchReport)...)

	// Productos por ID
	api.Get("/products/:id", productHandler.GetByID)
	api.Get("/products/:id/stock", productHandler.CurrentStock)
	api.Delete("/products", adminOnly, productHandler.Remove)
	api.Delete("/movements", adminOnly, inventoryHandler.Remove)

	// Vistas globales
	api.Get("/stock", adminOnly, stockHandler.GlobalView)
	api.Get("/stock/summary", adminOnly, stockHandler.Summary)
	api.Get("/stock/report.pdf", adminOnly, stockHandler.GlobalReport)
}

func passThrough(c *fiber.Ctx) error { return c.Next() }
