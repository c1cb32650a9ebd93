package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elbuensabor/backoffice-api/internal/application/usecase"
)

// DashboardHandler maneja la página de inicio con sus contadores agregados.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen de la página de inicio
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		// El resumen se degrada por sección: los contadores que se pudieron
		// armar viajan igual, con el primer fallo como diagnóstico.
		c.Set("X-Partial", "true")
	}
	return c.JSON(out)
}
