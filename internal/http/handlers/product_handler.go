package handlers

import (
	"github.com/gofiber/fiber/v2"

	"gnstore/internal/app"
	"gnstore/internal/query"
	"gnstore/internal/services"
	"gnstore/internal/validate"
)

type ProductHandler struct {
	Coord   *app.Coordinator
	Catalog *services.CatalogService
}

// List serves the filtered/sorted/paged catalog. Query params mirror the
// coordinator actions: category, q, min_price, max_price, in_stock,
// sort, page.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	f := query.Filters{
		Category: c.Query("category"),
		InStock:  c.Query("in_stock") == "true",
	}
	if q := c.Query("q"); q != "" {
		cleaned, ok := validate.Q(q)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid query"})
		}
		f.SearchQuery = cleaned
	}
	var ok bool
	if f.MinPrice, ok = validate.Price(c.Query("min_price")); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid min_price"})
	}
	if f.MaxPrice, ok = validate.Price(c.Query("max_price")); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid max_price"})
	}
	sortBy, ok := validate.Sort(c.Query("sort"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid sort"})
	}

	// per-request params go straight through the pure query layer; the
	// shared coordinator state is only touched for the products snapshot
	page := h.Coord.PageFor(c.Context(), f, sortBy, validate.Page(c.Query("page")))
	return c.JSON(fiber.Map{
		"products":      page.Items,
		"page":          page.Number,
		"page_size":     page.Size,
		"total_results": page.TotalItems,
		"total_pages":   page.TotalPages,
		"has_next":      page.HasNext,
		"has_prev":      page.HasPrev,
		"page_range":    query.PageRange(page.Number, page.TotalPages),
	})
}

func (h *ProductHandler) Featured(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"products": h.Catalog.FeaturedProducts(c.Context())})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	p, found := h.Catalog.ProductByID(c.Context(), id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(p)
}
