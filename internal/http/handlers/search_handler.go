package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "gnstore/internal/log"
	"gnstore/internal/services"
	"gnstore/internal/validate"
)

type SearchHandler struct {
	Catalog *services.CatalogService
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	q, ok := validate.Q(c.Query("q"))
	if !ok {
		applog.Security(c, "search.query.reject", map[string]any{"q": c.Query("q")})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid query"})
	}
	results := h.Catalog.Search(c.Context(), q)
	return c.JSON(fiber.Map{"query": q, "total": len(results), "products": results})
}
