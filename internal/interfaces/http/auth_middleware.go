package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elbuensabor/backoffice-api/internal/application/dto"
	"github.com/elbuensabor/backoffice-api/internal/guard"
	"github.com/elbuensabor/backoffice-api/internal/session"
)

// Locals key para la sesión resuelta en Fiber.
const LocalSession = "session"

// SessionMiddleware resuelve el header Authorization a una sesión y la deja
// en c.Locals. No rechaza nada: esa decisión es del guard de cada ruta.
func SessionMiddleware(provider *session.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalSession, provider.Resolve(c.Get("Authorization")))
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después de SessionMiddleware).
func GetSession(c *fiber.Ctx) session.Session {
	if s, ok := c.Locals(LocalSession).(session.Session); ok {
		return s
	}
	return session.Session{State: session.Resolving}
}

// RequireRoles traduce la decisión del guard a HTTP:
//   - Pending          -> 503 + Retry-After (la sesión todavía se resuelve; ni permitir ni rechazar).
//   - RedirectToLogin  -> 302 al proveedor, preservando el path pedido en el state.
//   - Forbidden        -> 403 con código FORBIDDEN (rechazo visible, nunca redirect).
//   - Allow            -> siguiente handler.
func RequireRoles(provider *session.Provider, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch guard.Authorize(roles, GetSession(c)) {
		case guard.Pending:
			c.Set("Retry-After", "1")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "SESSION_PENDING", Message: "sesión en resolución, reintente",
			})
		case guard.RedirectToLogin:
			return c.Redirect(provider.LoginURL(c.OriginalURL()), fiber.StatusFound)
		case guard.Forbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "FORBIDDEN", Message: "el rol de la sesión no tiene acceso a esta ruta",
			})
		}
		return c.Next()
	}
}

// PublicOnly protege rutas exclusivas de anónimos (login): un usuario ya
// autenticado es redirigido a la página de inicio.
func PublicOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch guard.PublicOnly(GetSession(c)) {
		case guard.Pending:
			c.Set("Retry-After", "1")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "SESSION_PENDING", Message: "sesión en resolución, reintente",
			})
		case guard.RedirectToHome:
			return c.Redirect("/dashboard", fiber.StatusFound)
		}
		return c.Next()
	}
}
