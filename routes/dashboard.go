package routes

import (
	handlers "chadebebe.link/handlers/dashboard"
	"chadebebe.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes define a API administrativa, protegida por sessão.
func registerDashboardRoutes(app *fiber.App) {
	guestHandler := handlers.NewGuestHandler()
	groupHandler := handlers.NewGroupHandler()
	importHandler := handlers.NewImportHandler()
	confirmationHandler := handlers.NewConfirmationHandler()
	giftHandler := handlers.NewGiftHandler()
	statsHandler := handlers.NewStatsHandler()

	api := app.Group("/api")
	api.Use(middlewares.AuthMiddleware)

	// Visão geral
	api.Get("/dashboard/summary", statsHandler.Summary)

	// Convidados
	api.Get("/guests", guestHandler.ListGuests)
	api.Post("/guests", guestHandler.CreateGuest)
	api.Post("/guests/import", importHandler.ImportGuests)
	api.Get("/guests/:id", guestHandler.GetGuest)
	api.Patch("/guests/:id", guestHandler.UpdateGuest)
	api.Delete("/guests/:id", guestHandler.DeleteGuest)

	// Grupos
	api.Get("/groups", groupHandler.ListGroups)
	api.Post("/groups", groupHandler.CreateGroup)
	api.Get("/groups/:id", groupHandler.GetGroup)
	api.Patch("/groups/:id", groupHandler.UpdateGroup)
	api.Delete("/groups/:id", groupHandler.DeleteGroup)
	api.Post("/groups/:id/members", groupHandler.AddMember)
	api.Post("/groups/:id/members/:guestId/remove", groupHandler.RemoveMember)

	// Confirmações e presentes
	api.Get("/confirmations", confirmationHandler.ListConfirmations)
	api.Get("/gifts/summary", giftHandler.Summary)
}
