package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes registra os middlewares globais e todos os grupos de rotas.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())

	registerAuthRoutes(app)
	// As rotas públicas vêm antes para que /api/confirm não passe pelo
	// middleware de sessão do grupo /api.
	registerPublicRoutes(app)
	registerDashboardRoutes(app)

	// Captura qualquer rota não registrada.
	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Recurso não encontrado"})
}
