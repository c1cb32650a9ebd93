package guard

import (
	"fmt"

	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
)

// Access clasifica una ruta frente al guard.
type Access int

const (
	// Public: visible sin sesión (callback, cambio de contraseña).
	Public Access = iota
	// PublicOnlyAccess: visible solo sin sesión (login).
	PublicOnlyAccess
	// Protected: exige sesión autenticada con uno de los roles listados.
	Protected
)

// Route es la configuración explícita de una ruta: path, tipo de acceso y
// roles permitidos. Reemplaza la tabla implícita de constantes globales del
// diseño anterior; ValidateTable la verifica en el arranque.
type Route struct {
	Path   string
	Access Access
	Roles  []string // vacío salvo en rutas Protected
}

// Conjuntos de roles de la tabla de rutas.
var (
	allRoles             = entity.AllRoles
	adminOnly            = []string{entity.RoleAdmin}
	adminManager         = []string{entity.RoleAdmin, entity.RoleManager}
	adminManagerEmployee = []string{entity.RoleAdmin, entity.RoleManager, entity.RoleEmployee}
	adminManagerDelivery = []string{entity.RoleAdmin, entity.RoleManager, entity.RoleDelivery}
)

// Table es la tabla de rutas del back office. El orden es el de navegación;
// los paths no listados caen en la página not-found y la raíz redirige a /dashboard.
var Table = []Route{
	{Path: "/login", Access: PublicOnlyAccess},
	{Path: "/callback", Access: Public},
	{Path: "/change-password", Access: Public},
	{Path: "/dashboard", Access: Protected, Roles: allRoles},
	{Path: "/customers", Access: Protected, Roles: adminManagerEmployee},
	{Path: "/employees", Access: Protected, Roles: adminManager},
	{Path: "/orders", Access: Protected, Roles: allRoles},
	{Path: "/products", Access: Protected, Roles: adminManager},
	{Path: "/products/categories", Access: Protected, Roles: adminManager},
	{Path: "/delivery", Access: Protected, Roles: adminManagerDelivery},
	{Path: "/reports", Access: Protected, Roles: adminManager},
	{Path: "/settings", Access: Protected, Roles: adminOnly},
}

// knownPaths es la enumeración completa de páginas del back office. Sirve para
// validar que la tabla no olvide ni invente rutas.
var knownPaths = []string{
	"/login", "/callback", "/change-password", "/dashboard", "/customers",
	"/employees", "/orders", "/products", "/products/categories", "/delivery",
	"/reports", "/settings",
}

// ValidateTable verifica la tabla de rutas en el arranque:
//   - cada path conocido aparece exactamente una vez y no hay paths extra;
//   - toda ruta protegida lista al menos un rol;
//   - todo rol nombrado pertenece a la enumeración cerrada;
//   - las rutas no protegidas no llevan roles.
func ValidateTable(table []Route) error {
	seen := make(map[string]bool, len(table))
	for _, r := range table {
		if seen[r.Path] {
			return fmt.Errorf("guard: ruta duplicada %q", r.Path)
		}
		seen[r.Path] = true

		switch r.Access {
		case Protected:
			if len(r.Roles) == 0 {
				return fmt.Errorf("guard: ruta protegida %q sin roles", r.Path)
			}
			for _, role := range r.Roles {
				if !entity.ValidRole(role) {
					return fmt.Errorf("guard: ruta %q nombra el rol desconocido %q", r.Path, role)
				}
			}
		default:
			if len(r.Roles) != 0 {
				return fmt.Errorf("guard: ruta pública %q no debe listar roles", r.Path)
			}
		}
	}
	for _, p := range knownPaths {
		if !seen[p] {
			return fmt.Errorf("guard: falta la ruta %q en la tabla", p)
		}
	}
	for p := range seen {
		known := false
		for _, k := range knownPaths {
			if k == p {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("guard: la tabla nombra la ruta desconocida %q", p)
		}
	}
	return nil
}
