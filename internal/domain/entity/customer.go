package entity

import "time"

// Customer es un cliente del restaurante.
type Customer struct {
	ID            string     `json:"id"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	OrderCount    int        `json:"orderCount"`
	LastOrderDate *time.Time `json:"lastOrderDate"`
}

// Employee es un empleado del restaurante; Role pertenece a la enumeración cerrada.
type Employee struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	HireDate  time.Time `json:"hireDate"`
	Status    string    `json:"status"` // active, inactive
}
