package handlers

import (
	"errors"

	"pocketmart/internal/log"
	"pocketmart/internal/services"
	"pocketmart/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// GET /login
func (h *AuthHandler) Form(c *fiber.Ctx) error {
	if h.Auth.Current() != nil {
		return c.Redirect("/catalog")
	}
	return render(c, "auth", fiber.Map{})
}

// POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	pass := c.FormValue("password")

	// Malformed input fails exactly like wrong credentials.
	if _, ok := validate.Email(email); !ok {
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(401).Render("auth", fiber.Map{
			"LoginErr": "Invalid email or password", "LoginEmail": email, "CSRFToken": c.Cookies("csrf_"),
		})
	}
	if !validate.Password(pass) {
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_password_format"})
		return c.Status(401).Render("auth", fiber.Map{
			"LoginErr": "Invalid email or password", "LoginEmail": email, "CSRFToken": c.Cookies("csrf_"),
		})
	}

	sess, err := h.Auth.Login(email, pass)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("auth", fiber.Map{
			"LoginErr": "Invalid email or password", "LoginEmail": email, "CSRFToken": c.Cookies("csrf_"),
		})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": sess.Email})
	return c.Redirect("/catalog")
}

// POST /signup
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	name, okName := validate.Name(c.FormValue("name"))
	email, okEmail := validate.Email(c.FormValue("email"))
	role, okRole := validate.Role(c.FormValue("role"))
	pass := c.FormValue("password")

	repop := fiber.Map{
		"SignupName": c.FormValue("name"), "SignupEmail": c.FormValue("email"),
		"SignupRole": c.FormValue("role"), "CSRFToken": c.Cookies("csrf_"),
	}
	if !okName || !okEmail || !okRole || !validate.Password(pass) {
		log.Security(c, "auth.signup.fail", map[string]any{"reason": "bad_format"})
		repop["SignupErr"] = "Check the form: name, a valid email, a role and a password of 6+ characters."
		return c.Status(400).Render("auth", repop)
	}

	sess, err := h.Auth.Signup(name, email, pass, role)
	if errors.Is(err, services.ErrDuplicateEmail) {
		log.Security(c, "auth.signup.fail", map[string]any{"email": email, "reason": "duplicate"})
		repop["SignupErr"] = "That email is already registered."
		return c.Status(400).Render("auth", repop)
	}
	if err != nil {
		log.Error(c, "auth.signup.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not create the account. Please retry."})
	}

	log.Audit(c, "auth.signup.success", map[string]any{"email": sess.Email, "role": sess.Role})
	return c.Redirect("/catalog")
}

// POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.Auth.Logout(); err != nil {
		log.Error(c, "auth.logout.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not log out. Please retry."})
	}
	log.Audit(c, "auth.logout", nil)
	return c.Redirect("/login")
}
