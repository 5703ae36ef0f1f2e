package handlers

import (
	"errors"

	"chadebebe.link/configs"
	"chadebebe.link/configs/configslog"
	"chadebebe.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler trata login e logout do painel.
type AuthHandler struct {
	userService services.IUserService
}

// NewAuthHandler cria um AuthHandler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{userService: services.NewUserService()}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login autentica o administrador e grava o usuário na sessão.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload loginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados de login inválidos"})
	}

	user, err := h.userService.Authenticate(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": services.ErrInvalidCredentials.Error()})
		}
		configslog.Log.Error("Login: erro inesperado", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}

	sess, err := configs.SetupSession().Get(c)
	if err != nil {
		configslog.Log.Error("Login: erro ao abrir sessão", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	sess.Set("user_id", user.ID)
	sess.Set("user_name", user.Name)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Login: erro ao salvar sessão", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}

	return c.JSON(fiber.Map{"id": user.ID, "name": user.Name, "email": user.Email, "role": user.Role})
}

// Logout encerra a sessão atual.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := configs.SetupSession().Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.SendStatus(fiber.StatusNoContent)
}
