package handlers

import (
	"pocketmart/internal/domain"
	applog "pocketmart/internal/log"
	"pocketmart/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireSeller guards listing mutations. Anonymous visitors are sent
// to the login form; signed-in non-sellers get a denial page.
func RequireSeller(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := auth.Current()
		if u == nil {
			return c.Redirect("/login")
		}
		if u.Role != domain.RoleSeller {
			applog.Security(c, "access.denied.seller", map[string]any{"user": u.Email, "role": u.Role})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		c.Locals("user", u)
		return c.Next()
	}
}
