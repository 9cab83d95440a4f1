// Package webapi exposes the ledger over HTTP with Fiber. It is thin
// plumbing: parsing, validation, and error-to-status mapping live here;
// every correctness guarantee lives in the ledger engine.
package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/minibank/ledger/pkg/config"
	ledgersvc "github.com/minibank/ledger/pkg/service/ledger"
)

// SetupApp builds the Fiber application with all routes and middleware.
func SetupApp(deps config.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "ledger",
	})
	app.Use(requestid.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	svc := ledgersvc.NewService(deps)
	Routes(app, svc)
	return app
}
