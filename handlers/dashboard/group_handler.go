package handlers

import (
	"errors"
	"strings"

	"chadebebe.link/configs/configslog"
	"chadebebe.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GroupHandler expõe o CRUD de grupos e a gestão de membros.
type GroupHandler struct {
	service services.IGroupService
}

// NewGroupHandler cria um GroupHandler.
func NewGroupHandler() *GroupHandler {
	return &GroupHandler{service: services.NewGroupService()}
}

// groupPayload é o corpo aceito na criação/edição de grupos. O sentinela
// "none" do seletor de líder vira nulo aqui na borda.
type groupPayload struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	LeaderID    *uint   `json:"leaderId"`
}

func (p groupPayload) toInput() services.GroupInput {
	return services.GroupInput{
		Name:        strings.TrimSpace(p.Name),
		Description: normalizeOptional(p.Description),
		LeaderID:    p.LeaderID,
	}
}

// ListGroups lista grupos com total de membros, líder e confirmação.
func (h *GroupHandler) ListGroups(c *fiber.Ctx) error {
	groups, err := h.service.ListGroups(c.UserContext())
	if err != nil {
		configslog.Log.Error("ListGroups: erro", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.JSON(groups)
}

// CreateGroup cria um grupo.
func (h *GroupHandler) CreateGroup(c *fiber.Ctx) error {
	var payload groupPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	group, err := h.service.CreateGroup(c.UserContext(), payload.toInput())
	if err != nil {
		if errors.Is(err, services.ErrGroupNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("CreateGroup: erro", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

// GetGroup retorna um grupo com membros, líder e confirmação.
func (h *GroupHandler) GetGroup(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}

	group, err := h.service.GetGroupByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("GetGroup: erro", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.JSON(group)
}

// UpdateGroup atualiza nome, descrição e líder de um grupo.
func (h *GroupHandler) UpdateGroup(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}
	var payload groupPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	group, err := h.service.UpdateGroup(c.UserContext(), uint(id), payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGroupNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrGroupNameRequired), errors.Is(err, services.ErrLeaderNotMember):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("UpdateGroup: erro", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.JSON(group)
}

// DeleteGroup exclui um grupo, sua confirmação e desvincula os membros.
func (h *GroupHandler) DeleteGroup(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}

	if err := h.service.DeleteGroup(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("DeleteGroup: erro", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type addMemberPayload struct {
	GuestID uint `json:"guestId"`
}

// AddMember vincula um convidado existente ao grupo.
func (h *GroupHandler) AddMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}
	var payload addMemberPayload
	if err := c.BodyParser(&payload); err != nil || payload.GuestID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID do convidado é obrigatório"})
	}

	guest, err := h.service.AddMember(c.UserContext(), uint(id), payload.GuestID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberGroupNotFound), errors.Is(err, services.ErrMemberGuestNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("AddMember: erro", zap.Int("groupID", id), zap.Uint("guestID", payload.GuestID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.JSON(guest)
}

// RemoveMember desvincula um convidado do grupo.
func (h *GroupHandler) RemoveMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}
	guestID, err := c.ParamsInt("guestId")
	if err != nil || guestID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID do convidado inválido"})
	}

	if err := h.service.RemoveMember(c.UserContext(), uint(id), uint(guestID)); err != nil {
		if errors.Is(err, services.ErrGuestNotInGroup) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("RemoveMember: erro", zap.Int("groupID", id), zap.Int("guestID", guestID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
