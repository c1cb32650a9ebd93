// tokengen emite tokens HS256 de desarrollo para probar el back office sin
// pasar por el proveedor de identidad real.
//
// Uso: go run ./cmd/tokengen -role admin -email dev@elbuensabor.com
// El secreto y el issuer salen de las mismas env vars que usa el servidor
// (AUTH_JWT_SECRET, AUTH_JWT_ISSUER, AUTH_AUDIENCE).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
	"github.com/elbuensabor/backoffice-api/pkg/config"
	"github.com/elbuensabor/backoffice-api/pkg/jwt"
)

func main() {
	role := flag.String("role", entity.RoleAdmin, "rol del token: admin | manager | employee | delivery")
	email := flag.String("email", "dev@elbuensabor.com", "email del usuario de prueba")
	name := flag.String("name", "Usuario de Desarrollo", "nombre del usuario de prueba")
	sub := flag.String("sub", "dev-user", "subject del token")
	minutes := flag.Int("minutes", 0, "minutos de vigencia (0 = el valor de configuración)")
	flag.Parse()

	if !entity.ValidRole(*role) {
		fmt.Fprintf(os.Stderr, "rol desconocido %q (válidos: admin, manager, employee, delivery)\n", *role)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.Auth.Secret == "" {
		fmt.Fprintln(os.Stderr, "AUTH_JWT_SECRET no configurado")
		os.Exit(1)
	}

	exp := cfg.Auth.Expiration
	if *minutes > 0 {
		exp = *minutes
	}

	token, err := jwt.Generate(cfg.Auth.Secret, jwt.Identity{
		Sub:   *sub,
		Email: *email,
		Name:  *name,
		Role:  *role,
	}, cfg.Auth.Issuer, cfg.Auth.Audience, exp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "emitir token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
