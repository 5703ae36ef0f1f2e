package handlers

import (
	"chadebebe.link/configs/configslog"
	"chadebebe.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatsHandler expõe a visão geral do painel.
type StatsHandler struct {
	service services.IStatsService
}

// NewStatsHandler cria um StatsHandler.
func NewStatsHandler() *StatsHandler {
	return &StatsHandler{service: services.NewStatsService()}
}

// Summary retorna os totais do painel: convidados, grupos, confirmados e
// pacotes de fralda prometidos.
func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	stats, err := h.service.DashboardSummary(c.UserContext())
	if err != nil {
		configslog.Log.Error("DashboardSummary: erro", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.JSON(stats)
}
