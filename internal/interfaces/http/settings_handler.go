package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elbuensabor/backoffice-api/internal/application/dto"
	"github.com/elbuensabor/backoffice-api/pkg/config"
)

// SettingsHandler expone la vista de configuración (solo admin, sin secretos).
type SettingsHandler struct {
	cfg *config.Config
}

func NewSettingsHandler(cfg *config.Config) *SettingsHandler {
	return &SettingsHandler{cfg: cfg}
}

// Show godoc
// @Summary      Configuración visible de la aplicación
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /settings [get]
func (h *SettingsHandler) Show(c *fiber.Ctx) error {
	return c.JSON(dto.SettingsResponse{
		AppName:     h.cfg.App.Name,
		Env:         h.cfg.App.Env,
		AuthDomain:  h.cfg.Auth.Domain,
		UpstreamURL: h.cfg.Upstream.BaseURL,
	})
}
