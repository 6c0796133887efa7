package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "gnstore/internal/log"
	"gnstore/internal/services"
)

// OrderHandler hands the cart off to the external messaging channel.
// There is no order persistence: the WhatsApp link *is* the checkout.
type OrderHandler struct {
	Cart  *services.CartService
	Phone string
}

func (h *OrderHandler) Message(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": h.Cart.OrderMessage()})
}

func (h *OrderHandler) Link(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"link": h.Cart.OrderLink(h.Phone)})
}

// Send redirects to the prefilled WhatsApp conversation, the service-side
// equivalent of the storefront opening the link in a new tab.
func (h *OrderHandler) Send(c *fiber.Ctx) error {
	if h.Cart.ItemsCount() == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cart is empty"})
	}
	link := h.Cart.OrderLink(h.Phone)
	applog.Info(c, "order.send", map[string]any{"items": h.Cart.ItemsCount(), "total": h.Cart.Total()})
	return c.Redirect(link, fiber.StatusFound)
}
