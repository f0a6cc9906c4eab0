package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/riolentius/customer-accounts/internal/config"
	customerhandler "github.com/riolentius/customer-accounts/internal/delivery/http/handler/customer"
	"github.com/riolentius/customer-accounts/internal/delivery/middleware"
	customeruc "github.com/riolentius/customer-accounts/internal/usecase/customer"
)

const (
	ServiceName    = "Customer REST API Service"
	ServiceVersion = "1.0"
)

func RegisterRoutes(app *fiber.App, cfg config.Config, store customeruc.Store, log *zap.Logger) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":    ServiceName,
			"version": ServiceVersion,
			"paths":   c.BaseURL() + "/customers",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	// Customers wiring
	customerUC := customeruc.New(store, log.Named("customer"))
	customerH := customerhandler.New(customerUC, log.Named("customer_handler"))

	// Mutating routes sit behind the API key gate
	gate := middleware.RequireAPIKey(middleware.APIKeyConfig{
		Hash:   cfg.APIKeyHash,
		Secret: cfg.APIKeySecret,
	})

	app.Get("/customers", customerH.List)
	app.Get("/customers/:id<int>", customerH.Get)
	app.Post("/customers", gate, customerH.Create)
	app.Put("/customers/:id<int>", gate, customerH.Update)
	app.Put("/customers/:id<int>/suspend", gate, customerH.Suspend)
	app.Delete("/customers/:id<int>", gate, customerH.Delete)
}
