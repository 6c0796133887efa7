package handlers

import (
	"github.com/gofiber/fiber/v2"

	"gnstore/internal/services"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories := h.Catalog.Categories(c.Context())
	if categories == nil {
		categories = []string{}
	}
	return c.JSON(fiber.Map{"categories": categories})
}

func (h *CategoryHandler) Products(c *fiber.Ctx) error {
	category := c.Params("category")
	if category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing category"})
	}
	return c.JSON(fiber.Map{"products": h.Catalog.ProductsByCategory(c.Context(), category)})
}
