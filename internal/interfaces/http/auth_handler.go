package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elbuensabor/backoffice-api/internal/application/auth"
	"github.com/elbuensabor/backoffice-api/internal/application/dto"
	"github.com/elbuensabor/backoffice-api/internal/session"
)

// AuthHandler maneja login, logout, callback e identidad de la sesión.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de autenticación.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      URL de autorización del proveedor de identidad
// @Tags         auth
// @Produce      json
// @Param        returnTo  query  string  false  "Path interno a retomar después del login"
// @Success      200  {object}  dto.LoginResponse
// @Router       /login [get]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return c.JSON(dto.LoginResponse{LoginURL: h.uc.LoginURL(c.Query("returnTo"))})
}

// Callback godoc
// @Summary      Retorno del proveedor de identidad
// @Tags         auth
// @Success      302
// @Router       /callback [get]
func (h *AuthHandler) Callback(c *fiber.Ctx) error {
	// El state trae el path interno pedido antes del login; cualquier valor
	// externo o malformado cae a la página de inicio.
	return c.Redirect(h.uc.ResolveCallback(c.Query("state")), fiber.StatusFound)
}

// Logout godoc
// @Summary      Cerrar sesión contra el proveedor de identidad
// @Tags         auth
// @Success      302
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.Redirect(h.uc.LogoutURL(), fiber.StatusFound)
}

// Me godoc
// @Summary      Identidad de la sesión autenticada
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Router       /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	s := GetSession(c)
	if s.State != session.Authenticated {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "sesión no autenticada",
		})
	}
	return c.JSON(dto.MeResponse{
		Sub:   s.Identity.Sub,
		Email: s.Identity.Email,
		Name:  s.Identity.Name,
		Role:  s.Identity.Role,
	})
}

// ChangePassword godoc
// @Summary      Cambiar la contraseña del usuario actual
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Success      204
// @Router       /change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ChangePassword(c.Context(), in.CurrentPassword, in.NewPassword); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
