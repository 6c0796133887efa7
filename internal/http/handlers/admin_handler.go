package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "gnstore/internal/log"
	"gnstore/internal/services"
	"gnstore/internal/validate"
)

type AdminHandler struct {
	Catalog *services.CatalogService
}

// ClearCache drops both catalog cache layers; the next fetch goes to the
// feed again. The cart is untouched.
func (h *AdminHandler) ClearCache(c *fiber.Ctx) error {
	h.Catalog.ClearCache()
	applog.Info(c, "admin.cache.clear", nil)
	return c.JSON(fiber.Map{"ok": true})
}

// SetFeed repoints the catalog at another spreadsheet.
func (h *AdminHandler) SetFeed(c *fiber.Ctx) error {
	sheetID, ok := validate.SheetID(c.FormValue("sheet_id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid sheet_id"})
	}
	h.Catalog.SetSheetID(sheetID)
	applog.Info(c, "admin.feed.set", map[string]any{"sheet_id": sheetID})
	return c.JSON(fiber.Map{"ok": true})
}
