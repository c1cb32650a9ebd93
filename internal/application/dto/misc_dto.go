package dto

// LoginResponse URL de autorización del proveedor de identidad.
type LoginResponse struct {
	LoginURL string `json:"loginUrl"`
}

// MeResponse identidad de la sesión autenticada.
type MeResponse struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// ChangePasswordRequest cambio de contraseña reenviado al proveedor upstream.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// StatusChangeRequest cambio de estado de un pedido o una entrega.
type StatusChangeRequest struct {
	Status string `json:"status"`
}

// AssignDeliveryRequest asignación de repartidor a un pedido.
type AssignDeliveryRequest struct {
	OrderID          string `json:"orderId"`
	DeliveryPersonID string `json:"deliveryPersonId"`
}

// DashboardResponse contadores agregados de la página de inicio.
type DashboardResponse struct {
	Products       int            `json:"products"`
	Customers      int            `json:"customers"`
	OrdersByStatus map[string]int `json:"ordersByStatus"`
	LowStock       int            `json:"lowStock"`
}

// SettingsResponse vista de configuración (solo admin, sin secretos).
type SettingsResponse struct {
	AppName     string `json:"appName"`
	Env         string `json:"env"`
	AuthDomain  string `json:"authDomain"`
	UpstreamURL string `json:"upstreamUrl"`
}
