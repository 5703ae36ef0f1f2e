package handlers

import (
	"errors"
	"strings"

	"chadebebe.link/configs/configslog"
	"chadebebe.link/pkg/queryparams"
	"chadebebe.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GuestHandler expõe o CRUD de convidados do painel.
type GuestHandler struct {
	service    services.IGuestService
	identifier services.IIdentifierService
}

// NewGuestHandler cria um GuestHandler.
func NewGuestHandler() *GuestHandler {
	return &GuestHandler{
		service:    services.NewGuestService(),
		identifier: services.NewIdentifierService(),
	}
}

// guestPayload é o corpo aceito na criação/edição. Os campos opcionais são
// ponteiros; o sentinela legado "nenhum" vindo de formulários antigos é
// normalizado para nulo aqui na borda, nunca propagado para dentro.
type guestPayload struct {
	Name         string  `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	GroupID      *uint   `json:"groupId"`
	GiftSize     *string `json:"giftSize"`
	GiftQuantity *int    `json:"giftQuantity"`
	IsChild      bool    `json:"isChild"`
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" || strings.EqualFold(trimmed, "nenhum") || strings.EqualFold(trimmed, "none") {
		return nil
	}
	return &trimmed
}

func (p guestPayload) toInput() services.GuestInput {
	return services.GuestInput{
		Name:         strings.TrimSpace(p.Name),
		Email:        normalizeOptional(p.Email),
		Phone:        normalizeOptional(p.Phone),
		GroupID:      p.GroupID,
		GiftSize:     normalizeOptional(p.GiftSize),
		GiftQuantity: p.GiftQuantity,
		IsChild:      p.IsChild,
	}
}

// ListGuests lista convidados em ordem alfabética, paginados.
func (h *GuestHandler) ListGuests(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("name")
	}
	if params.SortBy == "" {
		params.SortBy = "name"
	}

	result, err := h.service.ListGuests(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("ListGuests: erro", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.JSON(result)
}

// CreateGuest cria um convidado.
func (h *GuestHandler) CreateGuest(c *fiber.Ctx) error {
	var payload guestPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	guest, err := h.service.CreateGuest(c.UserContext(), payload.toInput())
	if err != nil {
		if errors.Is(err, services.ErrGuestNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("CreateGuest: erro", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.Status(fiber.StatusCreated).JSON(guest)
}

// GetGuest retorna um convidado com grupo e confirmação.
func (h *GuestHandler) GetGuest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}

	guest, err := h.service.GetGuestByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("GetGuest: erro", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.JSON(fiber.Map{
		"guest":           guest,
		"confirmationUrl": h.identifier.GuestConfirmationURL(guest),
		"whatsappUrl":     h.identifier.GuestWhatsAppURL(guest),
	})
}

// UpdateGuest atualiza um convidado.
func (h *GuestHandler) UpdateGuest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}
	var payload guestPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	guest, err := h.service.UpdateGuest(c.UserContext(), uint(id), payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGuestNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrGuestNameRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("UpdateGuest: erro", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.JSON(guest)
}

// DeleteGuest exclui um convidado e sua confirmação.
func (h *GuestHandler) DeleteGuest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}

	if err := h.service.DeleteGuest(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("DeleteGuest: erro", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
