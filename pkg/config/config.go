package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Auth     AuthConfig
	Upstream UpstreamConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AuthConfig configuración del proveedor de identidad y de la validación de tokens.
// Domain, ClientID, CallbackURL y Audience parametrizan el flujo de redirect;
// Secret/Issuer/Expiration validan (y en desarrollo emiten) los tokens HS256.
type AuthConfig struct {
	Domain      string // ej. elbuensabor.us.auth0.com
	ClientID    string
	CallbackURL string // URL pública de /callback
	Audience    string
	Secret      string
	Issuer      string
	Expiration  int // minutos
}

// UpstreamConfig configuración del API REST de negocio que consume el gateway.
type UpstreamConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, AUTH_DOMAIN, UPSTREAM_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "buen-sabor-backoffice"),
			LogLevel: getString(v, "LOG_LEVEL", ""),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Auth: AuthConfig{
			Domain:      getString(v, "AUTH_DOMAIN", ""),
			ClientID:    getString(v, "AUTH_CLIENT_ID", ""),
			CallbackURL: getString(v, "AUTH_CALLBACK_URL", "http://localhost:8080/callback"),
			Audience:    getString(v, "AUTH_AUDIENCE", ""),
			Secret:      getString(v, "AUTH_JWT_SECRET", ""),
			Issuer:      getString(v, "AUTH_JWT_ISSUER", "buen-sabor-backoffice"),
			Expiration:  getInt(v, "AUTH_JWT_EXPIRATION_MINUTES", 60),
		},
		Upstream: UpstreamConfig{
			BaseURL:        getString(v, "UPSTREAM_BASE_URL", "http://localhost:9000/api"),
			TimeoutSeconds: getInt(v, "UPSTREAM_TIMEOUT_SECONDS", 15),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
