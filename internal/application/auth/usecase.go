// Package auth implementa los casos de uso de autenticación del back office:
// el flujo de redirect contra el proveedor de identidad y el cambio de
// contraseña reenviado al upstream. El almacenamiento de credenciales y la
// emisión de tokens viven en el proveedor, no acá.
package auth

import (
	"context"
	"strings"

	"github.com/elbuensabor/backoffice-api/internal/domain"
	"github.com/elbuensabor/backoffice-api/internal/session"
)

// CredentialsAPI puerto de operaciones de credenciales del upstream.
type CredentialsAPI interface {
	ChangePassword(ctx context.Context, current, next string) error
}

// AuthUseCase flujo de login/logout/callback y cambio de contraseña.
type AuthUseCase struct {
	provider    *session.Provider
	credentials CredentialsAPI
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(provider *session.Provider, credentials CredentialsAPI) *AuthUseCase {
	return &AuthUseCase{provider: provider, credentials: credentials}
}

// LoginURL devuelve la URL de autorización del proveedor, preservando el path
// pedido originalmente para restaurarlo tras el callback.
func (uc *AuthUseCase) LoginURL(returnTo string) string {
	return uc.provider.LoginURL(returnTo)
}

// LogoutURL devuelve la URL de cierre de sesión del proveedor.
func (uc *AuthUseCase) LogoutURL() string {
	return uc.provider.LogoutURL()
}

// ResolveCallback resuelve el destino post-login desde el state del callback.
func (uc *AuthUseCase) ResolveCallback(state string) string {
	return session.ReturnTo(state)
}

// ChangePassword valida mínimamente y reenvía el cambio al upstream.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, current, next string) error {
	if strings.TrimSpace(current) == "" || strings.TrimSpace(next) == "" {
		return domain.ErrInvalidInput
	}
	if len(next) < 8 {
		return domain.ErrInvalidInput
	}
	return uc.credentials.ChangePassword(ctx, current, next)
}
