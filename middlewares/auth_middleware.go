package middlewares

import (
	"chadebebe.link/configs"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware exige sessão ativa nas rotas do painel. O ID do usuário vai
// para os Locals da requisição; nenhum estado global de sessão é mantido.
func AuthMiddleware(c *fiber.Ctx) error {
	sess, err := configs.SetupSession().Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Não autorizado"})
	}
	userID, ok := sess.Get("user_id").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Não autorizado"})
	}
	c.Locals("userID", userID)
	if name, ok := sess.Get("user_name").(string); ok {
		c.Locals("userName", name)
	}
	return c.Next()
}
