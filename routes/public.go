package routes

import (
	handlers "chadebebe.link/handlers/public"

	"github.com/gofiber/fiber/v2"
)

// registerPublicRoutes define as rotas acessíveis pelo convidado, sem sessão.
func registerPublicRoutes(app *fiber.App) {
	rsvpHandler := handlers.NewRSVPHandler()

	// O segmento fixo "grupo" vem antes do parâmetro de convidado.
	app.Get("/confirmar/grupo/:identifier", rsvpHandler.ShowGroup)
	app.Get("/confirmar/:identifier", rsvpHandler.ShowGuest)
	app.Post("/api/confirm/group/:id", rsvpHandler.ConfirmGroup)
	app.Post("/api/confirm/:id", rsvpHandler.ConfirmGuest)
}
