package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pasqualotto/controle-estoque/internal/application/dto"
)

// Health godoc
// @Summary      Estado del servicio y backend de persistencia activo
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func Health(store string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Store: store})
	}
}
