package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"pocketmart/internal/http/handlers"
	"pocketmart/internal/services"
	"pocketmart/internal/store"
)

// newTestApp wires the same middleware and route surface as
// cmd/pocketmart against a fresh in-memory store.
func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	st := store.New(db)
	if err := st.Load(); err != nil {
		t.Fatalf("load store: %v", err)
	}

	authSvc := &services.AuthService{Store: st}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine, Immutable: true})
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		if u := authSvc.Current(); u != nil {
			c.Locals("user", u)
		}
		return c.Next()
	})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	deps := handlers.NewDeps(st, authSvc)

	app.Get("/", func(c *fiber.Ctx) error {
		if authSvc.Current() != nil {
			return c.Redirect("/catalog")
		}
		return c.Redirect("/login")
	})
	app.Get("/catalog", deps.CatalogHandler.Browse)
	app.Get("/login", deps.AuthHandler.Form)
	app.Post("/login", deps.AuthHandler.Login)
	app.Post("/signup", deps.AuthHandler.Signup)
	app.Post("/logout", deps.AuthHandler.Logout)
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Post("/checkout", deps.CartHandler.Checkout)
	app.Get("/dashboard", deps.DashboardHandler.View)
	sellerOnly := handlers.RequireSeller(authSvc)
	app.Post("/dashboard/products", sellerOnly, deps.DashboardHandler.Create)
	app.Post("/dashboard/products/delete", sellerOnly, deps.DashboardHandler.Delete)
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	return app, st
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// csrfToken fetches a fresh token the way a browser would, by loading
// any page and reading the cookie the middleware set.
func csrfToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/login", nil))
	if err != nil {
		t.Fatal(err)
	}
	tok := extractCookie(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}
	return tok
}

// postForm submits an urlencoded form with the csrf token in both the
// body and the cookie, matching the double-submit check.
func postForm(t *testing.T, app *fiber.App, path, tok, body string) *http.Response {
	t.Helper()
	form := "csrf=" + tok
	if body != "" {
		form += "&" + body
	}
	req := httptest.NewRequest("POST", path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: tok})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func getBody(t *testing.T, app *fiber.App, path string) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatal(err)
	}
	return readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}
