package handlers

import (
	"chadebebe.link/configs/configslog"
	"chadebebe.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GiftHandler expõe o resumo de presentes (pacotes de fraldas).
type GiftHandler struct {
	service services.IGiftService
}

// NewGiftHandler cria um GiftHandler.
func NewGiftHandler() *GiftHandler {
	return &GiftHandler{service: services.NewGiftService()}
}

// Summary retorna os totais de fraldas por tamanho, confirmados e pendentes.
func (h *GiftHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.UserContext())
	if err != nil {
		configslog.Log.Error("GiftSummary: erro", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.JSON(summary)
}
