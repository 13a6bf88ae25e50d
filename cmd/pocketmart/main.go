package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"pocketmart/internal/config"
	"pocketmart/internal/http/handlers"
	applog "pocketmart/internal/log"
	"pocketmart/internal/services"
	"pocketmart/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := store.Open(cfg.StoreDSN)
	if err != nil {
		log.Fatal(err)
	}
	st := store.New(db)
	if err := st.Load(); err != nil {
		log.Fatal(err)
	}

	authSvc := &services.AuthService{Store: st}

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		// Form values end up retained in the store beyond the request;
		// without this, context strings alias fasthttp's reused buffers.
		Immutable: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and show a friendly message
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach the stored session to every request (templates, guards)
	app.Use(func(c *fiber.Ctx) error {
		if u := authSvc.Current(); u != nil {
			c.Locals("user", u)
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(string(c.Request().URI().Path()), "/static/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			formTok := c.FormValue("csrf")
			applog.Security(c, "csrf.fail", map[string]any{"form": formTok})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- App handlers ----------
	deps := handlers.NewDeps(st, authSvc)

	// Landing resumes where the stored session points
	app.Get("/", func(c *fiber.Ctx) error {
		if authSvc.Current() != nil {
			return c.Redirect("/catalog")
		}
		return c.Redirect("/login")
	})

	// Catalog
	app.Get("/catalog", deps.CatalogHandler.Browse)

	// Auth (login throttled)
	app.Get("/login", deps.AuthHandler.Form)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("auth", fiber.Map{"LoginErr": "Too many attempts. Please try again later."})
		},
	}), deps.AuthHandler.Login)
	app.Post("/signup", deps.AuthHandler.Signup)
	app.Post("/logout", deps.AuthHandler.Logout)

	// Cart
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Post("/checkout", deps.CartHandler.Checkout)

	// Seller dashboard: the page is open, the mutations are guarded
	app.Get("/dashboard", deps.DashboardHandler.View)
	sellerOnly := handlers.RequireSeller(authSvc)
	app.Post("/dashboard/products", sellerOnly, deps.DashboardHandler.Create)
	app.Post("/dashboard/products/delete", sellerOnly, deps.DashboardHandler.Delete)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
