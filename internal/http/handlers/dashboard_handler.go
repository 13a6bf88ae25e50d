package handlers

import (
	"pocketmart/internal/domain"
	applog "pocketmart/internal/log"
	"pocketmart/internal/services"
	"pocketmart/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Catalog *services.CatalogService
}

// GET /dashboard
//
// The page itself is open: visitors and buyers see a prompt instead of
// the listing tools. Only the POSTs below sit behind RequireSeller.
func (h *DashboardHandler) View(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.Session)
	if u == nil {
		return render(c, "dashboard", fiber.Map{"Prompt": "Log in with a seller account to manage listings."})
	}
	if u.Role != domain.RoleSeller {
		return render(c, "dashboard", fiber.Map{"Prompt": "Only seller accounts can manage listings."})
	}
	return render(c, "dashboard", fiber.Map{"Products": h.Catalog.SellerProducts(u.UserID)})
}

// POST /dashboard/products
func (h *DashboardHandler) Create(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.Session)

	title, okTitle := validate.Title(c.FormValue("title"))
	price, okPrice := validate.Price(c.FormValue("price"))
	category, okCat := validate.Category(c.FormValue("category"))
	image, okImg := validate.Image(c.FormValue("image"))
	stock, okStock := validate.Stock(c.FormValue("stock"))
	desc := validate.Desc(c.FormValue("desc"))

	if !okTitle || !okPrice || !okCat || !okImg || !okStock {
		applog.Security(c, "validation.fail", map[string]any{"form": "product.create"})
		c.Status(fiber.StatusBadRequest)
		return render(c, "dashboard", fiber.Map{
			"Products": h.Catalog.SellerProducts(u.UserID),
			"Err":      "Check the form: title, category, a non-negative price and stock.",
			"FormTitle": c.FormValue("title"), "FormDesc": c.FormValue("desc"),
			"FormPrice": c.FormValue("price"), "FormCategory": c.FormValue("category"),
			"FormImage": c.FormValue("image"), "FormStock": c.FormValue("stock"),
		})
	}

	p, err := h.Catalog.AddProduct(services.NewProduct{
		SellerID: u.UserID,
		Title:    title,
		Desc:     desc,
		Price:    price,
		Category: category,
		Image:    image,
		Stock:    stock,
	})
	if err != nil {
		applog.Error(c, "product.create.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not save the listing. Please retry."})
	}

	applog.Audit(c, "product.create", map[string]any{"product": p.ID, "title": p.Title})
	return c.Redirect("/dashboard")
}

// POST /dashboard/products/delete
func (h *DashboardHandler) Delete(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.Session)

	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(400).SendString("invalid productId")
	}

	// Sellers only manage their own listings. An id that is already
	// gone is fine; deleting twice lands in the same place.
	if p, found := h.Catalog.Product(id); found && p.SellerID != u.UserID {
		applog.Security(c, "access.denied.product", map[string]any{"product": id})
		return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
	}

	removed, err := h.Catalog.DeleteProduct(id)
	if err != nil {
		applog.Error(c, "product.delete.fail", err, map[string]any{"product": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not delete the listing. Please retry."})
	}
	if removed {
		applog.Audit(c, "product.delete", map[string]any{"product": id})
	}
	return c.Redirect("/dashboard")
}
