package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/mem"
)

// Providers names the engines wired into the running service.
type Providers struct {
	OCR         string `json:"ocr"`
	Translation string `json:"translation"`
	Storage     string `json:"storage"`
	Font        string `json:"font"`
}

type HealthHandler struct {
	providers Providers
}

func NewHealthHandler(providers Providers) *HealthHandler {
	return &HealthHandler{providers: providers}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive and report the configured engines and host memory
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	resp := fiber.Map{
		"status":    "ok",
		"service":   "ocr-translate-api",
		"providers": h.providers,
	}

	vm, err := mem.VirtualMemoryWithContext(c.UserContext())
	if err != nil {
		log.Warn().Err(err).Msg("⚠️ memory stats unavailable")
	} else {
		resp["memory"] = fiber.Map{
			"total_mb":     vm.Total / 1024 / 1024,
			"available_mb": vm.Available / 1024 / 1024,
			"used_percent": vm.UsedPercent,
		}
	}

	return c.JSON(resp)
}
