package handlers

import (
	"errors"

	"chadebebe.link/configs/configslog"
	"chadebebe.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ImportHandler trata a importação de convidados via CSV.
type ImportHandler struct {
	service services.IImportService
}

// NewImportHandler cria um ImportHandler.
func NewImportHandler() *ImportHandler {
	return &ImportHandler{service: services.NewImportService()}
}

// ImportGuests recebe o multipart com o campo "file" e processa o CSV.
// Falhas estruturais (colunas ausentes, líderes duplicados, arquivo ilegível)
// retornam 400; erros de linha voltam como dados dentro de um 200.
func (h *ImportHandler) ImportGuests(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nenhum arquivo enviado"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Não foi possível ler o arquivo"})
	}
	defer file.Close()

	result, err := h.service.ImportGuestsCSV(c.UserContext(), file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrImportMissingColumns),
			errors.Is(err, services.ErrImportMultipleLeaders),
			errors.Is(err, services.ErrImportEmptyFile):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("ImportGuests: erro", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao processar arquivo CSV"})
	}

	return c.JSON(fiber.Map{
		"success":              true,
		"convidadosImportados": result.ConvidadosImportados,
		"gruposAtualizados":    result.GruposAtualizados,
		"erros":                result.Erros,
	})
}
