package handlers

import (
	"pocketmart/internal/services"
	"pocketmart/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

// GET /catalog
func (h *CatalogHandler) Browse(c *fiber.Ctx) error {
	q := validate.Term(c.Query("q"))
	category := c.Query("category")

	cats := h.Catalog.Categories()
	// A category that vanished with its last product falls back to all.
	if category != "" {
		known := false
		for _, cat := range cats {
			if cat == category {
				known = true
				break
			}
		}
		if !known {
			category = ""
		}
	}

	products := h.Catalog.Filter(q, category)
	return render(c, "catalog", fiber.Map{
		"Q": q, "Category": category, "Categories": cats,
		"Products": products, "Count": len(products),
	})
}
