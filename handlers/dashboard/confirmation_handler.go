package handlers

import (
	"chadebebe.link/configs/configslog"
	"chadebebe.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ConfirmationHandler expõe a listagem de confirmações do painel.
type ConfirmationHandler struct {
	service services.IConfirmationService
}

// NewConfirmationHandler cria um ConfirmationHandler.
func NewConfirmationHandler() *ConfirmationHandler {
	return &ConfirmationHandler{service: services.NewConfirmationService()}
}

// ListConfirmations retorna todas as confirmações (confirmadas e mais
// recentes primeiro) e os convidados que nunca responderam.
func (h *ConfirmationHandler) ListConfirmations(c *fiber.Ctx) error {
	listing, err := h.service.ListConfirmations(c.UserContext())
	if err != nil {
		configslog.Log.Error("ListConfirmations: erro", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.JSON(listing)
}
