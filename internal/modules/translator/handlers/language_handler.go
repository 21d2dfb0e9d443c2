package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/shared/languages"
)

type LanguageHandler struct{}

func NewLanguageHandler() *LanguageHandler {
	return &LanguageHandler{}
}

// ListLanguages godoc
// @Summary Supported languages
// @Description Languages offered as translation source and target. "auto" is only valid as a source.
// @Tags Languages
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /languages [get]
func (h *LanguageHandler) ListLanguages(c *fiber.Ctx) error {
	sources, err := languages.Sources()
	if err != nil {
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	targets, err := languages.Targets()
	if err != nil {
		return c.JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"source": sources,
		"target": targets,
	})
}
