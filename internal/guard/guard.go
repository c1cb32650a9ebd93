// Package guard decide si una petición puede ver una ruta según la sesión y
// los roles exigidos. La decisión es una función pura; el adaptador HTTP la
// traduce a códigos de estado en internal/interfaces/http.
package guard

import "github.com/elbuensabor/backoffice-api/internal/session"

// Decision es el resultado de autorizar una ruta.
type Decision int

const (
	// Pending: la sesión está en resolución; no renderizar ni rechazar todavía.
	Pending Decision = iota
	// RedirectToLogin: sesión resuelta y anónima; enviar al login preservando el path pedido.
	RedirectToLogin
	// Forbidden: autenticado pero el rol no alcanza. Rechazo visible (403),
	// nunca un redirect al login: redirigir a un usuario ya autenticado
	// generaría un bucle.
	Forbidden
	// Allow: autenticado y con rol suficiente.
	Allow
	// RedirectToHome: solo para rutas públicas-exclusivas (login): el usuario
	// ya está autenticado y no tiene nada que hacer ahí.
	RedirectToHome
)

// String para logs y mensajes de diagnóstico.
func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case RedirectToLogin:
		return "redirect-to-login"
	case Forbidden:
		return "forbidden"
	case Allow:
		return "allow"
	case RedirectToHome:
		return "redirect-to-home"
	}
	return "unknown"
}

// Authorize decide el acceso a una ruta protegida.
// Nunca permite ni deniega mientras la sesión esté en resolución.
func Authorize(requiredRoles []string, s session.Session) Decision {
	switch s.State {
	case session.Resolving:
		return Pending
	case session.Anonymous:
		return RedirectToLogin
	}
	for _, role := range requiredRoles {
		if role == s.Identity.Role {
			return Allow
		}
	}
	return Forbidden
}

// PublicOnly decide el acceso a una ruta exclusiva de anónimos (login):
// un usuario ya autenticado es redirigido a la página de inicio.
func PublicOnly(s session.Session) Decision {
	switch s.State {
	case session.Resolving:
		return Pending
	case session.Authenticated:
		return RedirectToHome
	}
	return Allow
}
