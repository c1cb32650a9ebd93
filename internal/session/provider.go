// Package session implementa la frontera con el proveedor de identidad:
// resolución del bearer token a una identidad con rol, URLs de login/logout
// del flujo de redirect y restauración del path original tras el callback.
package session

import (
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/elbuensabor/backoffice-api/pkg/config"
	"github.com/elbuensabor/backoffice-api/pkg/jwt"
)

// Estado de una sesión frente al guard de rutas.
type State int

const (
	// Resolving: el proveedor todavía no terminó de inicializarse; no se sabe
	// si hay sesión. El guard nunca permite ni rechaza en este estado.
	Resolving State = iota
	// Anonymous: sesión resuelta y no autenticada.
	Anonymous
	// Authenticated: sesión resuelta con identidad y rol.
	Authenticated
)

// Session es el resultado de resolver una petición entrante.
type Session struct {
	State    State
	Identity jwt.Identity
}

// IsAuthenticated indica si la sesión está resuelta y autenticada.
func (s Session) IsAuthenticated() bool { return s.State == Authenticated }

// Provider valida tokens del proveedor de identidad y construye las URLs del
// flujo de redirect. Arranca en estado no-listo: hasta Start, toda resolución
// devuelve Resolving (el equivalente del isLoading del proveedor).
type Provider struct {
	cfg   config.AuthConfig
	ready atomic.Bool
}

// NewProvider construye el proveedor sin inicializarlo.
func NewProvider(cfg config.AuthConfig) *Provider {
	return &Provider{cfg: cfg}
}

// Start valida la configuración y marca el proveedor como listo.
func (p *Provider) Start() error {
	if p.cfg.Domain == "" || p.cfg.ClientID == "" || p.cfg.CallbackURL == "" {
		return errMissingConfig
	}
	if p.cfg.Secret == "" {
		return errMissingSecret
	}
	p.ready.Store(true)
	return nil
}

// Ready indica si el proveedor terminó de inicializarse.
func (p *Provider) Ready() bool { return p.ready.Load() }

// Resolve convierte el header Authorization en una sesión.
//   - Proveedor no listo         -> Resolving.
//   - Sin header / token inválido -> Anonymous.
//   - Token válido               -> Authenticated con la identidad del claim.
func (p *Provider) Resolve(authHeader string) Session {
	if !p.ready.Load() {
		return Session{State: Resolving}
	}
	token := bearerToken(authHeader)
	if token == "" {
		return Session{State: Anonymous}
	}
	id, err := jwt.Parse(p.cfg.Secret, token)
	if err != nil {
		return Session{State: Anonymous}
	}
	return Session{State: Authenticated, Identity: id}
}

// LoginURL construye la URL de autorización del proveedor, preservando el
// path originalmente pedido para volver a él tras el login (returnTo).
func (p *Provider) LoginURL(returnTo string) string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", p.cfg.ClientID)
	q.Set("redirect_uri", p.cfg.CallbackURL)
	if p.cfg.Audience != "" {
		q.Set("audience", p.cfg.Audience)
	}
	if returnTo != "" {
		q.Set("state", returnTo)
	}
	return "https://" + p.cfg.Domain + "/authorize?" + q.Encode()
}

// LogoutURL construye la URL de cierre de sesión del proveedor.
func (p *Provider) LogoutURL() string {
	q := url.Values{}
	q.Set("client_id", p.cfg.ClientID)
	return "https://" + p.cfg.Domain + "/v2/logout?" + q.Encode()
}

// ReturnTo resuelve el destino post-login a partir del state del callback.
// Solo acepta paths relativos internos; cualquier otra cosa cae a /dashboard.
func ReturnTo(state string) string {
	if state == "" || !strings.HasPrefix(state, "/") || strings.HasPrefix(state, "//") {
		return "/dashboard"
	}
	return state
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
