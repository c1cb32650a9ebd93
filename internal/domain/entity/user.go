package entity

import "time"

// Roles válidos del back office. La enumeración es cerrada: el guard de rutas
// rechaza en el arranque cualquier tabla que nombre un rol fuera de esta lista.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
	RoleDelivery = "delivery"
)

// AllRoles es la enumeración completa, en el orden canónico.
var AllRoles = []string{RoleAdmin, RoleManager, RoleEmployee, RoleDelivery}

// ValidRole indica si el string pertenece a la enumeración de roles.
func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User representa un usuario del sistema. El rol vive en la sesión (claim del
// token), nunca en recursos individuales.
type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	FirstLogin bool      `json:"isFirstLogin"`
	CreatedAt  time.Time `json:"createdAt"`
}
