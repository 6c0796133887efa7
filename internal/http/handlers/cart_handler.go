package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"gnstore/internal/app"
	"gnstore/internal/format"
	"gnstore/internal/services"
	"gnstore/internal/validate"
)

type CartHandler struct {
	Coord   *app.Coordinator
	Catalog *services.CatalogService
	Cart    *services.CartService
}

func (h *CartHandler) view(c *fiber.Ctx) error {
	items := h.Cart.Items()
	total := h.Cart.Total()
	return c.JSON(fiber.Map{
		"items":           items,
		"count":           h.Cart.ItemsCount(),
		"total":           total,
		"total_formatted": format.Price(total),
	})
}

func (h *CartHandler) View(c *fiber.Ctx) error { return h.view(c) }

// Add puts a catalog product into the cart. The product is looked up in
// the catalog so the denormalized fields come from the source feed, not
// from the client.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.FormValue("product_id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product_id"})
	}
	qty := validate.Qty(c.FormValue("qty"))

	p, found := h.Catalog.ProductByID(c.Context(), id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	h.Coord.AddToCart(p, qty)
	return h.view(c)
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.FormValue("product_id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product_id"})
	}
	// zero and negatives are legal here: they remove the line
	qty := 0
	if n, err := strconv.Atoi(strings.TrimSpace(c.FormValue("qty"))); err == nil {
		qty = n
	}
	h.Coord.UpdateQuantity(id, qty)
	return h.view(c)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.FormValue("product_id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product_id"})
	}
	h.Coord.RemoveFromCart(id)
	return h.view(c)
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.Coord.ClearCart()
	return h.view(c)
}
