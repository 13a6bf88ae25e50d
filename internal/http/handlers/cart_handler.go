package handlers

import (
	"errors"

	applog "pocketmart/internal/log"
	"pocketmart/internal/services"
	"pocketmart/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart *services.CartService
}

// GET /cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	return render(c, "cart", fiber.Map{"Cart": h.Cart.View()})
}

// POST /cart
func (h *CartHandler) Add(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(400).SendString("invalid productId")
	}
	if err := h.Cart.Add(id); err != nil {
		applog.Error(c, "cart.add.fail", err, map[string]any{"product": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not update the cart. Please retry."})
	}
	return c.Redirect("/cart")
}

// POST /cart/remove
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(400).SendString("invalid productId")
	}
	if err := h.Cart.Remove(id); err != nil {
		applog.Error(c, "cart.remove.fail", err, map[string]any{"product": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not update the cart. Please retry."})
	}
	return c.Redirect("/cart")
}

// POST /checkout
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	n, err := h.Cart.Checkout()
	if errors.Is(err, services.ErrEmptyCart) {
		return render(c, "cart", fiber.Map{"Cart": h.Cart.View(), "Notice": "Your cart is empty."})
	}
	if err != nil {
		applog.Error(c, "cart.checkout.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not check out. Please retry."})
	}
	applog.Audit(c, "cart.checkout", map[string]any{"lines": n})
	return render(c, "cart", fiber.Map{"Cart": h.Cart.View(), "Notice": "Order placed. This demo stops at the receipt."})
}
