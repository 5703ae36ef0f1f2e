package handlers

import (
	"errors"

	"chadebebe.link/configs/configslog"
	"chadebebe.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RSVPHandler trata o fluxo público de confirmação de presença.
type RSVPHandler struct {
	identifier   services.IIdentifierService
	confirmation services.IConfirmationService
}

// NewRSVPHandler cria um RSVPHandler.
func NewRSVPHandler() *RSVPHandler {
	return &RSVPHandler{
		identifier:   services.NewIdentifierService(),
		confirmation: services.NewConfirmationService(),
	}
}

// ShowGuest resolve o identificador público (slug ou token legado) e retorna
// o convidado com confirmação, grupo e grupos que lidera.
func (h *RSVPHandler) ShowGuest(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	guest, err := h.identifier.FindGuestBySlugOrInviteLink(c.UserContext(), identifier)
	if err != nil {
		if errors.Is(err, services.ErrIdentifierGuestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("ShowGuest: erro", zap.String("identifier", identifier), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.JSON(guest)
}

// ShowGroup resolve o identificador público de um grupo e o retorna com
// membros, líder e confirmação, para a página de confirmação coletiva.
func (h *RSVPHandler) ShowGroup(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	group, err := h.identifier.FindGroupBySlugOrInviteLink(c.UserContext(), identifier)
	if err != nil {
		if errors.Is(err, services.ErrIdentifierGroupNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("ShowGroup: erro", zap.String("identifier", identifier), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.JSON(group)
}

// ConfirmGuest aplica a resposta de RSVP de um convidado. Se ele pertence a
// um grupo e está aceitando, a aceitação propaga para o grupo inteiro.
func (h *RSVPHandler) ConfirmGuest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}
	var input services.ConfirmationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	result, err := h.confirmation.ConfirmGuest(c.UserContext(), uint(id), input)
	if err != nil {
		if errors.Is(err, services.ErrConfirmationGuestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("ConfirmGuest: erro", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}

	if result.GroupConfirmation {
		return c.JSON(fiber.Map{"success": true, "groupConfirmation": true})
	}
	return c.JSON(fiber.Map{"success": true, "confirmation": result.Confirmation})
}

// ConfirmGroup aplica a resposta de RSVP de um grupo, com lista opcional de
// membros confirmados para confirmação parcial pelo líder.
func (h *RSVPHandler) ConfirmGroup(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}
	var input services.GroupConfirmationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	_, err = h.confirmation.ConfirmGroup(c.UserContext(), uint(id), input)
	if err != nil {
		if errors.Is(err, services.ErrConfirmationGroupNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("ConfirmGroup: erro", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.JSON(fiber.Map{"success": true, "groupConfirmation": true})
}
